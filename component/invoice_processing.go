package component

import (
	"strconv"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

var invoiceSeed = []model.Invoice{
	{ID: 1, Property: "Property A", Amount: 5000, Status: "Pending", DueDate: "2023-09-30"},
	{ID: 2, Property: "Property B", Amount: 7500, Status: "Paid", DueDate: "2023-09-15"},
	{ID: 3, Property: "Property C", Amount: 6000, Status: "Overdue", DueDate: "2023-09-01"},
}

// InvoiceProcessing lists invoices with their amount and payment status.
type InvoiceProcessing struct {
	invoices []model.Invoice
	currency string
}

// InvoiceOption customizes an InvoiceProcessing component.
type InvoiceOption func(*InvoiceProcessing)

// WithCurrency sets the symbol prefixed to amounts. Empty keeps the default.
func WithCurrency(symbol string) InvoiceOption {
	return func(i *InvoiceProcessing) {
		if symbol != "" {
			i.currency = symbol
		}
	}
}

// NewInvoiceProcessing returns the component seeded with the sample invoices.
func NewInvoiceProcessing(opts ...InvoiceOption) *InvoiceProcessing {
	i := &InvoiceProcessing{
		invoices: append([]model.Invoice(nil), invoiceSeed...),
		currency: constant.DefaultCurrencySymbol,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

func (i *InvoiceProcessing) ID() string    { return constant.TabInvoiceProcessing }
func (i *InvoiceProcessing) Title() string { return "Invoice Processing" }

// Invoices returns a copy of the rendered records.
func (i *InvoiceProcessing) Invoices() []model.Invoice {
	return append([]model.Invoice(nil), i.invoices...)
}

// FormatAmount prefixes the amount with the currency symbol, without grouping.
func (i *InvoiceProcessing) FormatAmount(amount int) string {
	return i.currency + strconv.Itoa(amount)
}

func (i *InvoiceProcessing) Table(_ *model.AppConfig) Table {
	rows := make([][]string, 0, len(i.invoices))
	for _, inv := range i.invoices {
		rows = append(rows, []string{inv.Property, i.FormatAmount(inv.Amount), inv.Status, inv.DueDate})
	}

	return Table{
		Title:   i.Title(),
		Headers: []string{"Property", "Amount", "Status", "Due Date"},
		Rows:    rows,
	}
}
