package constant

// Tab identifiers
const (
	TabPropertyOccupation = "propertyOccupation"
	TabInvoiceProcessing  = "invoiceProcessing"
)

// Chart kinds
const (
	ChartPie  = "pie"
	ChartBar  = "bar"
	ChartLine = "line"
)

// Section names of AppConfig that carry charts
const (
	SectionDashboard = "dashboard"
	SectionAnalytics = "analytics"
)

// Icon references understood by the host icon set
const (
	IconHome     = "Home"
	IconBarChart = "BarChart2"
	IconSettings = "Settings"
	IconUsers    = "Users"
	IconCalendar = "Calendar"
	IconPhone    = "Phone"
	IconFileText = "FileText"
	IconMail     = "Mail"
)

// Feature flag keys
const (
	FeatureDataImport      = "dataImport"
	FeatureAnalytics       = "analytics"
	FeatureReporting       = "reporting"
	FeatureEmailAutomation = "emailAutomation"
)

// Auxiliary data list keys
const (
	DataPropertyTypes    = "propertyTypes"
	DataOccupationCycles = "occupationCycles"
	DataInvoiceStatuses  = "invoiceStatuses"
	DataActionTypes      = "actionTypes"
)

// DefaultCurrencySymbol prefixes invoice amounts
const DefaultCurrencySymbol = "£"

// Event subjects
const (
	// SubjectCustomizationReloaded is published after a customization swap
	SubjectCustomizationReloaded = "dashboard.customization.reloaded"
)
