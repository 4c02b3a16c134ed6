package component

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

//go:embed templates/*.gohtml
var templates embed.FS

var tableTmpl = template.Must(template.ParseFS(templates, "templates/table.gohtml"))

type tableContext struct {
	ID     string
	Accent string
	Table  Table
}

// RenderHTML writes the component as an HTML table fragment.
func RenderHTML(w io.Writer, c Component, cfg *model.AppConfig) error {
	ctx := tableContext{ID: c.ID(), Table: c.Table(cfg)}
	if cfg != nil {
		ctx.Accent = cfg.PrimaryColor
	}

	if err := tableTmpl.ExecuteTemplate(w, "table.gohtml", ctx); err != nil {
		return fmt.Errorf("render %s: %w", c.ID(), err)
	}

	return nil
}

// RenderText renders the component as a bordered terminal table no wider than width.
func RenderText(c Component, cfg *model.AppConfig, width int) string {
	t := c.Table(cfg)

	accent := lipgloss.Color("#1E40AF")
	if cfg != nil && cfg.PrimaryColor != "" {
		accent = lipgloss.Color(cfg.PrimaryColor)
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		})

	if width > 0 {
		tbl = tbl.Width(width)
	}

	title := lipgloss.NewStyle().Bold(true).Render(t.Title)

	return title + "\n" + tbl.String()
}

// Render renders the component in the requested format.
func Render(c Component, cfg *model.AppConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", constant.FormatHTML:
		var buf bytes.Buffer
		if err := RenderHTML(&buf, c, cfg); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case constant.FormatText:
		return []byte(RenderText(c, cfg, 0)), nil
	default:
		return nil, fmt.Errorf("%w: %s", constant.ErrUnsupportedFormat, format)
	}
}
