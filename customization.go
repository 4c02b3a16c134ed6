package dashboard

import (
	"fmt"
	"slices"

	"github.com/LerianStudio/lib-dashboard-go/component"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

// Customization is the object a host dashboard consumes: branding and layout
// configuration, the component to render for each tab, and auxiliary lists.
type Customization struct {
	Config     model.AppConfig
	Components component.Registry
	Data       model.CustomData
}

// Option customizes the default Customization.
type Option func(*options)

type options struct {
	currency string
}

// WithCurrency sets the symbol prefixed to invoice amounts.
func WithCurrency(symbol string) Option {
	return func(o *options) {
		o.currency = symbol
	}
}

// Default returns a fresh copy of the QuoinStone Group customization.
func Default(opts ...Option) *Customization {
	o := options{currency: constant.DefaultCurrencySymbol}
	for _, opt := range opts {
		opt(&o)
	}

	return &Customization{
		Config:     DefaultConfig(),
		Components: DefaultComponents(component.WithCurrency(o.currency)),
		Data:       DefaultData(),
	}
}

// DefaultComponents returns the components mapped to the preset tabs.
func DefaultComponents(invoiceOpts ...component.InvoiceOption) component.Registry {
	return component.Registry{
		constant.TabPropertyOccupation: component.NewPropertyOccupation(),
		constant.TabInvoiceProcessing:  component.NewInvoiceProcessing(invoiceOpts...),
	}
}

// TabIDs returns the dashboard tab identifiers in display order.
func (c *Customization) TabIDs() []string {
	return c.Config.TabIDs()
}

// Component returns the component to render for a tab.
func (c *Customization) Component(tabID string) (component.Component, error) {
	return c.Components.Lookup(tabID)
}

// Chart returns a chart definition of the dashboard or analytics section.
func (c *Customization) Chart(section, name string) (model.ChartConfig, error) {
	if section != constant.SectionDashboard && section != constant.SectionAnalytics {
		return model.ChartConfig{}, fmt.Errorf("%w: %s", constant.ErrUnknownSection, section)
	}

	chart, ok := c.Config.Chart(section, name)
	if !ok {
		return model.ChartConfig{}, fmt.Errorf("%w: %s/%s", constant.ErrUnknownChart, section, name)
	}

	return chart.Clone(), nil
}

// DataList returns a copy of one auxiliary list.
func (c *Customization) DataList(key string) ([]string, error) {
	list, ok := c.Data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constant.ErrUnknownDataList, key)
	}

	return slices.Clone(list), nil
}

// Feature reports whether a declared feature flag is on.
func (c *Customization) Feature(name string) (bool, error) {
	on, known := c.Config.Features.Enabled(name)
	if !known {
		return false, fmt.Errorf("%w: %s", constant.ErrUnknownFeature, name)
	}

	return on, nil
}

// Clone returns a deep copy of the configuration and data; components are shared.
func (c *Customization) Clone() *Customization {
	return &Customization{
		Config:     c.Config.Clone(),
		Components: c.Components.Clone(),
		Data:       c.Data.Clone(),
	}
}
