package model

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/LerianStudio/lib-dashboard-go/constant"
)

// AppConfig is the branding and layout configuration consumed by the host dashboard.
type AppConfig struct {
	Title          string   `json:"title" toml:"title"`
	CompanyName    string   `json:"companyName" toml:"companyName"`
	Logo           string   `json:"logo" toml:"logo"`
	PrimaryColor   string   `json:"primaryColor" toml:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor" toml:"secondaryColor"`
	UserName       string   `json:"userName" toml:"userName"`
	Dashboard      Section  `json:"dashboard" toml:"dashboard"`
	Analytics      Section  `json:"analytics" toml:"analytics"`
	Clients        []Client `json:"clients" toml:"clients"`
	Features       Features `json:"features" toml:"features"`
}

// Section groups the tabs and charts shown on one dashboard page.
type Section struct {
	Tabs   []TabConfig            `json:"tabs,omitempty" toml:"tabs,omitempty"`
	Charts map[string]ChartConfig `json:"charts,omitempty" toml:"charts,omitempty"`
}

// TabConfig describes one dashboard tab. Slice order is display order.
type TabConfig struct {
	ID          string `json:"id" toml:"id"`
	Label       string `json:"label" toml:"label"`
	Description string `json:"description" toml:"description"`
	Icon        string `json:"icon" toml:"icon"`
}

// ChartConfig is a declarative chart definition handed to the host charting renderer.
type ChartConfig struct {
	Type     string      `json:"type" toml:"type"`
	DataKeys []string    `json:"dataKeys" toml:"dataKeys"`
	Colors   []string    `json:"colors" toml:"colors"`
	Data     []DataPoint `json:"data" toml:"data"`
}

// DataPoint is one record of chart data. Its shape depends on the chart
// (name/value, name/count, month/cycles, week/efficiency).
type DataPoint map[string]any

// Client is a customer record shown by the host.
type Client struct {
	ID       string `json:"id" toml:"id"`
	Name     string `json:"name" toml:"name"`
	Industry string `json:"industry" toml:"industry"`
}

// CustomData holds auxiliary constant lists keyed by name.
type CustomData map[string][]string

// Keys returns the point keys in lexical order.
func (p DataPoint) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// HasKeys reports whether every key is present in the point.
func (p DataPoint) HasKeys(keys ...string) bool {
	for _, k := range keys {
		if _, ok := p[k]; !ok {
			return false
		}
	}

	return true
}

// Value returns the numeric value stored under key.
func (p DataPoint) Value(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Label returns the first non data-key string field of the point, which is
// the category axis value ("Vacant", "Jan", "Week 1").
func (p DataPoint) Label(dataKeys []string) string {
	skip := make(map[string]struct{}, len(dataKeys))
	for _, k := range dataKeys {
		skip[k] = struct{}{}
	}

	for _, k := range p.Keys() {
		if _, isData := skip[k]; isData {
			continue
		}

		if s, ok := p[k].(string); ok {
			return s
		}

		return fmt.Sprint(p[k])
	}

	return ""
}

// Chart looks up a chart by section and name.
func (c *AppConfig) Chart(section, name string) (ChartConfig, bool) {
	var s Section

	switch section {
	case constant.SectionDashboard:
		s = c.Dashboard
	case constant.SectionAnalytics:
		s = c.Analytics
	default:
		return ChartConfig{}, false
	}

	chart, ok := s.Charts[name]

	return chart, ok
}

// TabIDs returns every tab identifier of the dashboard section in display order.
func (c *AppConfig) TabIDs() []string {
	ids := make([]string, 0, len(c.Dashboard.Tabs))
	for _, t := range c.Dashboard.Tabs {
		ids = append(ids, t.ID)
	}

	return ids
}

// Tab returns the tab descriptor with the given identifier.
func (c *AppConfig) Tab(id string) (TabConfig, bool) {
	for _, t := range c.Dashboard.Tabs {
		if t.ID == id {
			return t, true
		}
	}

	return TabConfig{}, false
}

// Clone returns a deep copy so callers can never mutate a shared preset.
func (c AppConfig) Clone() AppConfig {
	out := c
	out.Dashboard = c.Dashboard.clone()
	out.Analytics = c.Analytics.clone()

	if c.Clients != nil {
		out.Clients = append([]Client(nil), c.Clients...)
	}

	return out
}

func (s Section) clone() Section {
	out := Section{}

	if s.Tabs != nil {
		out.Tabs = append([]TabConfig(nil), s.Tabs...)
	}

	if s.Charts != nil {
		out.Charts = make(map[string]ChartConfig, len(s.Charts))
		for name, ch := range s.Charts {
			out.Charts[name] = ch.Clone()
		}
	}

	return out
}

// Clone returns a deep copy of the chart.
func (c ChartConfig) Clone() ChartConfig {
	out := ChartConfig{Type: c.Type}

	if c.DataKeys != nil {
		out.DataKeys = append([]string(nil), c.DataKeys...)
	}

	if c.Colors != nil {
		out.Colors = append([]string(nil), c.Colors...)
	}

	if c.Data != nil {
		out.Data = make([]DataPoint, len(c.Data))
		for i, p := range c.Data {
			cp := make(DataPoint, len(p))
			for k, v := range p {
				cp[k] = v
			}

			out.Data[i] = cp
		}
	}

	return out
}

// Clone returns a deep copy of the data lists.
func (d CustomData) Clone() CustomData {
	if d == nil {
		return nil
	}

	out := make(CustomData, len(d))
	for k, v := range d {
		out[k] = append([]string(nil), v...)
	}

	return out
}
