package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/LerianStudio/lib-dashboard-go/component"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:     "charts",
	Short:   "Preview chart data as text bars",
	GroupID: "inspect",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		width, _ := cmd.Flags().GetInt("width")

		p, cust, err := current(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		var charts map[string]model.ChartConfig

		switch section {
		case constant.SectionDashboard:
			charts = cust.Config.Dashboard.Charts
		case constant.SectionAnalytics:
			charts = cust.Config.Analytics.Charts
		default:
			return fmt.Errorf("%w: %s", constant.ErrUnknownSection, section)
		}

		names := make([]string, 0, len(charts))
		for name := range charts {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintln(os.Stdout, component.ChartText(name, charts[name], width))
			fmt.Fprintln(os.Stdout)
		}

		return nil
	},
}

func init() {
	chartsCmd.Flags().String("section", constant.SectionDashboard, "section to preview (dashboard or analytics)")
	chartsCmd.Flags().Int("width", 60, "maximum bar width")
}
