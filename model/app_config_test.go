package model

import (
	"testing"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() AppConfig {
	return AppConfig{
		Title: "Sample",
		Dashboard: Section{
			Tabs: []TabConfig{
				{ID: "b", Label: "B"},
				{ID: "a", Label: "A"},
			},
			Charts: map[string]ChartConfig{
				"status": {
					Type:     constant.ChartPie,
					DataKeys: []string{"value"},
					Colors:   []string{"#000000"},
					Data:     []DataPoint{{"name": "Vacant", "value": 2}},
				},
			},
		},
		Clients: []Client{{ID: "1", Name: "Acme"}},
	}
}

func TestDataPointValue(t *testing.T) {
	p := DataPoint{
		"int":    3,
		"int64":  int64(4),
		"float":  2.5,
		"string": "7",
		"word":   "seven",
		"flag":   true,
	}

	tests := []struct {
		key  string
		want float64
		ok   bool
	}{
		{"int", 3, true},
		{"int64", 4, true},
		{"float", 2.5, true},
		{"string", 7, true},
		{"word", 0, false},
		{"flag", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := p.Value(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestDataPointLabel(t *testing.T) {
	assert.Equal(t, "Jan", DataPoint{"month": "Jan", "cycles": 4}.Label([]string{"cycles"}))
	assert.Equal(t, "Week 1", DataPoint{"week": "Week 1", "efficiency": 85}.Label([]string{"efficiency"}))
	assert.Equal(t, "", DataPoint{"value": 1}.Label([]string{"value"}))
}

func TestDataPointHasKeys(t *testing.T) {
	p := DataPoint{"name": "Paid", "count": 45}

	assert.True(t, p.HasKeys("count"))
	assert.True(t, p.HasKeys("name", "count"))
	assert.False(t, p.HasKeys("value"))
	assert.Equal(t, []string{"count", "name"}, p.Keys())
}

func TestAppConfigLookups(t *testing.T) {
	cfg := sampleConfig()

	assert.Equal(t, []string{"b", "a"}, cfg.TabIDs(), "display order is preserved")

	tab, ok := cfg.Tab("a")
	require.True(t, ok)
	assert.Equal(t, "A", tab.Label)

	_, ok = cfg.Tab("zzz")
	assert.False(t, ok)

	chart, ok := cfg.Chart(constant.SectionDashboard, "status")
	require.True(t, ok)
	assert.Equal(t, constant.ChartPie, chart.Type)

	_, ok = cfg.Chart(constant.SectionAnalytics, "status")
	assert.False(t, ok)

	_, ok = cfg.Chart("elsewhere", "status")
	assert.False(t, ok)
}

func TestAppConfigCloneIsDeep(t *testing.T) {
	cfg := sampleConfig()
	cp := cfg.Clone()

	cp.Dashboard.Tabs[0].Label = "changed"
	cp.Clients[0].Name = "changed"
	cp.Dashboard.Charts["status"].Data[0]["value"] = 99
	cp.Dashboard.Charts["status"].Colors[0] = "#ffffff"

	assert.Equal(t, "B", cfg.Dashboard.Tabs[0].Label)
	assert.Equal(t, "Acme", cfg.Clients[0].Name)
	assert.Equal(t, 2, cfg.Dashboard.Charts["status"].Data[0]["value"])
	assert.Equal(t, "#000000", cfg.Dashboard.Charts["status"].Colors[0])
}

func TestCustomDataClone(t *testing.T) {
	d := CustomData{"statuses": {"Vacant"}}
	cp := d.Clone()
	cp["statuses"][0] = "Occupied"

	assert.Equal(t, "Vacant", d["statuses"][0])
	assert.Nil(t, CustomData(nil).Clone())
}
