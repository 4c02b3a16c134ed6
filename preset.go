package dashboard

import (
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

// DefaultConfig returns the QuoinStone Group property management configuration.
func DefaultConfig() model.AppConfig {
	return model.AppConfig{
		Title:          "QuoinStone Group - Property Management",
		CompanyName:    "QuoinStone Group",
		Logo:           "/path/to/quoinstone-logo.png",
		PrimaryColor:   "#1E40AF",
		SecondaryColor: "#60A5FA",
		UserName:       "Tim Struth",
		Dashboard: model.Section{
			Tabs: []model.TabConfig{
				{
					ID:          constant.TabPropertyOccupation,
					Label:       "Property Occupation",
					Description: "Manage property occupation cycles",
					Icon:        constant.IconHome,
				},
				{
					ID:          constant.TabInvoiceProcessing,
					Label:       "Invoice Processing",
					Description: "Process and track invoices",
					Icon:        constant.IconFileText,
				},
			},
			Charts: map[string]model.ChartConfig{
				"propertyStatus": {
					Type:     constant.ChartPie,
					DataKeys: []string{"value"},
					Colors:   []string{"#1E40AF", "#60A5FA", "#BFDBFE"},
					Data: []model.DataPoint{
						{"name": "Vacant", "value": 30},
						{"name": "Occupied", "value": 50},
						{"name": "In Transition", "value": 20},
					},
				},
				"invoiceStatus": {
					Type:     constant.ChartBar,
					DataKeys: []string{"count"},
					Colors:   []string{"#1E40AF"},
					Data: []model.DataPoint{
						{"name": "Pending", "count": 15},
						{"name": "Paid", "count": 25},
						{"name": "Overdue", "count": 5},
					},
				},
			},
		},
		Analytics: model.Section{
			Charts: map[string]model.ChartConfig{
				"propertyOccupationCycles": {
					Type:     constant.ChartLine,
					DataKeys: []string{"cycles"},
					Colors:   []string{"#1E40AF"},
					Data: []model.DataPoint{
						{"month": "Jan", "cycles": 10},
						{"month": "Feb", "cycles": 12},
						{"month": "Mar", "cycles": 15},
						{"month": "Apr", "cycles": 11},
					},
				},
				"invoiceProcessingEfficiency": {
					Type:     constant.ChartBar,
					DataKeys: []string{"efficiency"},
					Colors:   []string{"#60A5FA"},
					Data: []model.DataPoint{
						{"week": "Week 1", "efficiency": 85},
						{"week": "Week 2", "efficiency": 90},
						{"week": "Week 3", "efficiency": 88},
						{"week": "Week 4", "efficiency": 92},
					},
				},
			},
		},
		Clients: []model.Client{
			{ID: "client1", Name: "Major Retail Chain", Industry: "Retail"},
			{ID: "client2", Name: "Office Space Co", Industry: "Commercial Real Estate"},
			{ID: "client3", Name: "Shopping Center Group", Industry: "Retail"},
		},
		Features: model.Features{
			DataImport:      true,
			Analytics:       true,
			Reporting:       true,
			EmailAutomation: true,
		},
	}
}

// DefaultData returns the auxiliary constant lists.
func DefaultData() model.CustomData {
	return model.CustomData{
		constant.DataPropertyTypes:    {"Retail", "Office", "Shopping Center"},
		constant.DataOccupationCycles: {"Vacant", "Occupied", "In Transition"},
		constant.DataInvoiceStatuses:  {"Pending", "Paid", "Overdue"},
		constant.DataActionTypes:      {"Occupy", "Vacate", "Maintain"},
	}
}
