package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/LerianStudio/lib-dashboard-go/component"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

var chartTypes = map[string]struct{}{
	constant.ChartPie:  {},
	constant.ChartBar:  {},
	constant.ChartLine: {},
}

// Validate checks the structural rules a host relies on. It returns nil or a
// pkg.ValidationKnownFieldsError listing every offending field path.
func Validate(cfg model.AppConfig, reg component.Registry) error {
	fields := pkg.FieldValidations{}

	if strings.TrimSpace(cfg.Title) == "" {
		fields["title"] = "title is required"
	}

	checkColor(fields, "primaryColor", cfg.PrimaryColor)
	checkColor(fields, "secondaryColor", cfg.SecondaryColor)

	checkTabs(fields, cfg.Dashboard.Tabs, reg)
	checkCharts(fields, constant.SectionDashboard, cfg.Dashboard.Charts)
	checkCharts(fields, constant.SectionAnalytics, cfg.Analytics.Charts)
	checkClients(fields, cfg.Clients)

	if len(fields) == 0 {
		return nil
	}

	return pkg.ValidationKnownFieldsError{
		EntityType: "AppConfig",
		Code:       constant.ErrInvalidCustomization.Error(),
		Title:      "Invalid customization",
		Message:    fmt.Sprintf("The dashboard customization has %d invalid field(s).", len(fields)),
		Fields:     fields,
	}
}

// FeatureKeys returns the declared flag keys of f.
func FeatureKeys(f model.Features) []string {
	keys := make([]string, 0, len(model.FeatureNames))
	for name := range f.AsMap() {
		keys = append(keys, name)
	}

	sort.Strings(keys)

	return keys
}

func checkColor(fields pkg.FieldValidations, path, color string) {
	if !hexColor.MatchString(color) {
		fields[path] = fmt.Sprintf("%q is not a #RGB or #RRGGBB color", color)
	}
}

func checkTabs(fields pkg.FieldValidations, tabs []model.TabConfig, reg component.Registry) {
	seen := make(map[string]int, len(tabs))

	for i, tab := range tabs {
		path := fmt.Sprintf("dashboard.tabs[%d]", i)

		if strings.TrimSpace(tab.ID) == "" {
			fields[path+".id"] = "tab id is required"
			continue
		}

		if first, dup := seen[tab.ID]; dup {
			fields[path+".id"] = fmt.Sprintf("duplicate tab id %q (first at index %d)", tab.ID, first)
			continue
		}

		seen[tab.ID] = i

		if _, ok := reg[tab.ID]; !ok {
			fields[path+".id"] = fmt.Sprintf("no component registered for tab %q", tab.ID)
		}
	}

	for _, id := range reg.IDs() {
		if _, ok := seen[id]; !ok {
			fields["components."+id] = fmt.Sprintf("component %q has no dashboard tab", id)
		}
	}
}

func checkCharts(fields pkg.FieldValidations, section string, charts map[string]model.ChartConfig) {
	for name, chart := range charts {
		path := section + ".charts." + name

		if _, ok := chartTypes[chart.Type]; !ok {
			fields[path+".type"] = fmt.Sprintf("unknown chart type %q", chart.Type)
		}

		if len(chart.DataKeys) == 0 {
			fields[path+".dataKeys"] = "at least one data key is required"
		}

		if len(chart.Colors) == 0 {
			fields[path+".colors"] = "at least one color is required"
		}

		for i, c := range chart.Colors {
			if !hexColor.MatchString(c) {
				fields[fmt.Sprintf("%s.colors[%d]", path, i)] = fmt.Sprintf("%q is not a #RGB or #RRGGBB color", c)
			}
		}

		if len(chart.Data) == 0 {
			fields[path+".data"] = "chart data must not be empty"
		}

		for i, point := range chart.Data {
			if msg := checkPoint(point, chart.DataKeys); msg != "" {
				fields[fmt.Sprintf("%s.data[%d]", path, i)] = msg
			}
		}
	}
}

func checkPoint(point model.DataPoint, dataKeys []string) string {
	var missing, nonNumeric []string

	for _, k := range dataKeys {
		if !point.HasKeys(k) {
			missing = append(missing, k)
			continue
		}

		if _, ok := point.Value(k); !ok {
			nonNumeric = append(nonNumeric, k)
		}
	}

	switch {
	case len(missing) > 0:
		return "missing data keys: " + strings.Join(missing, ", ")
	case len(nonNumeric) > 0:
		return "non numeric values for: " + strings.Join(nonNumeric, ", ")
	default:
		return ""
	}
}

func checkClients(fields pkg.FieldValidations, clients []model.Client) {
	seen := make(map[string]struct{}, len(clients))

	for i, c := range clients {
		if c.ID == "" {
			fields[fmt.Sprintf("clients[%d].id", i)] = "client id is required"
			continue
		}

		if _, dup := seen[c.ID]; dup {
			fields[fmt.Sprintf("clients[%d].id", i)] = fmt.Sprintf("duplicate client id %q", c.ID)
		}

		seen[c.ID] = struct{}{}
	}
}
