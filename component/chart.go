package component

import (
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-dashboard-go/model"
)

// ChartText renders a plain text preview of a chart: one bar per data point
// and data key, scaled to the largest value. The host renders real charts.
func ChartText(name string, chart model.ChartConfig, width int) string {
	head := fmt.Sprintf("%s (%s)", name, chart.Type)
	if width <= 0 {
		width = 60
	}

	if len(chart.Data) == 0 {
		return head + "\n(no data)"
	}

	maxV := 0.0
	labelW := 0

	for _, p := range chart.Data {
		if l := len(p.Label(chart.DataKeys)); l > labelW {
			labelW = l
		}

		for _, k := range chart.DataKeys {
			if v, ok := p.Value(k); ok && v > maxV {
				maxV = v
			}
		}
	}

	if maxV <= 0 {
		maxV = 1
	}

	barSpace := max(1, width-labelW-12)
	lines := []string{head}

	for _, p := range chart.Data {
		for _, k := range chart.DataKeys {
			v, _ := p.Value(k)

			w := int((v / maxV) * float64(barSpace))
			if w < 1 {
				w = 1
			}

			label := p.Label(chart.DataKeys)
			if len(chart.DataKeys) > 1 {
				label += "/" + k
			}

			lines = append(lines, fmt.Sprintf("%-*s %s %g", labelW, label, strings.Repeat("#", w), v))
		}
	}

	return strings.Join(lines, "\n")
}
