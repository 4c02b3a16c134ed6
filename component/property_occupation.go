package component

import (
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

var propertySeed = []model.Property{
	{ID: 1, Name: "Shopping Center A", Status: "Vacant", NextAction: "Occupy", DueDate: "2023-09-15"},
	{ID: 2, Name: "Retail Space B", Status: "Occupied", NextAction: "Vacate", DueDate: "2023-10-01"},
	{ID: 3, Name: "Office Building C", Status: "Vacant", NextAction: "Occupy", DueDate: "2023-09-30"},
}

// PropertyOccupation lists properties with their occupation status and next action.
type PropertyOccupation struct {
	properties []model.Property
}

// NewPropertyOccupation returns the component seeded with the sample properties.
func NewPropertyOccupation() *PropertyOccupation {
	return &PropertyOccupation{properties: append([]model.Property(nil), propertySeed...)}
}

func (p *PropertyOccupation) ID() string    { return constant.TabPropertyOccupation }
func (p *PropertyOccupation) Title() string { return "Property Occupation Management" }

// Properties returns a copy of the rendered records.
func (p *PropertyOccupation) Properties() []model.Property {
	return append([]model.Property(nil), p.properties...)
}

func (p *PropertyOccupation) Table(_ *model.AppConfig) Table {
	rows := make([][]string, 0, len(p.properties))
	for _, prop := range p.properties {
		rows = append(rows, []string{prop.Name, prop.Status, prop.NextAction, prop.DueDate})
	}

	return Table{
		Title:   p.Title(),
		Headers: []string{"Property", "Status", "Next Action", "Due Date"},
		Rows:    rows,
	}
}
