package component

import (
	"testing"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyOccupationTable(t *testing.T) {
	p := NewPropertyOccupation()
	tbl := p.Table(nil)

	assert.Equal(t, constant.TabPropertyOccupation, p.ID())
	assert.Equal(t, "Property Occupation Management", tbl.Title)
	assert.Equal(t, []string{"Property", "Status", "Next Action", "Due Date"}, tbl.Headers)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"Shopping Center A", "Vacant", "Occupy", "2023-09-15"}, tbl.Rows[0])
	assert.Equal(t, []string{"Retail Space B", "Occupied", "Vacate", "2023-10-01"}, tbl.Rows[1])
	assert.Equal(t, []string{"Office Building C", "Vacant", "Occupy", "2023-09-30"}, tbl.Rows[2])
}

func TestInvoiceProcessingTable(t *testing.T) {
	i := NewInvoiceProcessing()
	tbl := i.Table(nil)

	assert.Equal(t, constant.TabInvoiceProcessing, i.ID())
	assert.Equal(t, "Invoice Processing", tbl.Title)
	require.Len(t, tbl.Rows, 3)

	amounts := []string{tbl.Rows[0][1], tbl.Rows[1][1], tbl.Rows[2][1]}
	assert.Equal(t, []string{"£5000", "£7500", "£6000"}, amounts)
	assert.Equal(t, []string{"Pending", "Paid", "Overdue"}, []string{tbl.Rows[0][2], tbl.Rows[1][2], tbl.Rows[2][2]})
}

func TestInvoiceProcessingCurrency(t *testing.T) {
	assert.Equal(t, "$7500", NewInvoiceProcessing(WithCurrency("$")).FormatAmount(7500))
	assert.Equal(t, "£7500", NewInvoiceProcessing(WithCurrency("")).FormatAmount(7500))
}

func TestRecordsAreCopies(t *testing.T) {
	p := NewPropertyOccupation()
	props := p.Properties()
	props[0].Name = "changed"
	assert.Equal(t, "Shopping Center A", p.Properties()[0].Name)

	i := NewInvoiceProcessing()
	invs := i.Invoices()
	invs[0].Amount = 1
	assert.Equal(t, 5000, i.Invoices()[0].Amount)
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry(NewPropertyOccupation(), NewInvoiceProcessing())
	require.NoError(t, err)

	assert.Equal(t, []string{constant.TabInvoiceProcessing, constant.TabPropertyOccupation}, reg.IDs())

	c, err := reg.Lookup(constant.TabPropertyOccupation)
	require.NoError(t, err)
	assert.Equal(t, "Property Occupation Management", c.Title())

	_, err = reg.Lookup("tenantScreening")
	assert.ErrorIs(t, err, constant.ErrUnknownTab)

	err = reg.Register(NewInvoiceProcessing())
	assert.ErrorIs(t, err, constant.ErrDuplicateComponent)

	_, err = NewRegistry(NewPropertyOccupation(), NewPropertyOccupation())
	assert.ErrorIs(t, err, constant.ErrDuplicateComponent)
}

func TestRegistryClone(t *testing.T) {
	reg, err := NewRegistry(NewPropertyOccupation())
	require.NoError(t, err)

	cp := reg.Clone()
	require.NoError(t, cp.Register(NewInvoiceProcessing()))

	assert.Len(t, reg, 1)
	assert.Len(t, cp, 2)
}
