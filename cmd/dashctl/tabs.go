package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/LerianStudio/lib-dashboard-go/component"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var tabsCmd = &cobra.Command{
	Use:     "tabs",
	Short:   "List dashboard tabs and their components",
	GroupID: "inspect",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cust, err := current(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		if jsonOutput {
			out, _ := json.MarshalIndent(cust.Config.Dashboard.Tabs, "", "  ")
			fmt.Fprintln(os.Stdout, string(out))

			return nil
		}

		accent := lipgloss.Color(cust.Config.PrimaryColor)
		header := lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(accent)).
			Headers("ID", "LABEL", "ICON", "COMPONENT").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}

				return cell
			})

		for _, tab := range cust.Config.Dashboard.Tabs {
			title := "-"
			if comp, err := cust.Component(tab.ID); err == nil {
				title = comp.Title()
			}

			t.Row(tab.ID, tab.Label, tab.Icon, title)
		}

		fmt.Fprintln(os.Stdout, lipgloss.NewStyle().Bold(true).Render(cust.Config.Title))
		fmt.Fprintln(os.Stdout, t.String())

		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:     "describe <tab>",
	Short:   "Describe a tab as rendered markdown",
	GroupID: "inspect",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cust, err := current(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		comp, err := cust.Component(args[0])
		if err != nil {
			return err
		}

		md := tableMarkdown(comp.Table(&cust.Config))

		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return err
		}

		rendered, err := renderer.Render(md)
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, rendered)

		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:     "render <tab>",
	Short:   "Render a tab fragment (html or text)",
	GroupID: "inspect",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		p, err := loadProvider(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		fragment, _, err := p.RenderTab(cmd.Context(), args[0], format)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(fragment)
		if err == nil && !strings.HasSuffix(string(fragment), "\n") {
			fmt.Fprintln(os.Stdout)
		}

		return err
	},
}

func init() {
	renderCmd.Flags().String("format", constant.FormatHTML, "output format (html or text)")
}

// tableMarkdown renders a component table as a markdown document.
func tableMarkdown(t component.Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "| %s |\n", strings.Join(t.Headers, " | "))
	fmt.Fprintf(&b, "|%s\n", strings.Repeat(" --- |", len(t.Headers)))

	for _, row := range t.Rows {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}

	fmt.Fprintf(&b, "\n_%d rows_\n", len(t.Rows))

	return b.String()
}
