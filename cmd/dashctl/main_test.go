package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/LerianStudio/lib-dashboard-go/component"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/stretchr/testify/assert"
)

func TestErrorTextListsFields(t *testing.T) {
	err := pkg.ValidationKnownFieldsError{
		Message: "The dashboard customization has 2 invalid field(s).",
		Fields: pkg.FieldValidations{
			"title":        "title is required",
			"primaryColor": `"blue" is not a #RGB or #RRGGBB color`,
		},
	}

	lines := strings.Split(errorText(err), "\n")

	assert.Equal(t, []string{
		"The dashboard customization has 2 invalid field(s).",
		`  primaryColor: "blue" is not a #RGB or #RRGGBB color`,
		"  title: title is required",
	}, lines)

	assert.Equal(t, "boom", errorText(errors.New("boom\n")))
}

func TestTableMarkdown(t *testing.T) {
	md := tableMarkdown(component.NewInvoiceProcessing().Table(nil))

	assert.True(t, strings.HasPrefix(md, "# Invoice Processing\n"))
	assert.Contains(t, md, "| Property | Amount | Status | Due Date |")
	assert.Contains(t, md, "| Property B | £7500 | Paid | 2023-09-15 |")
	assert.Contains(t, md, "_3 rows_")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"config", "tabs", "describe", "render", "charts", "validate", "export", "serve"} {
		assert.True(t, names[want], want)
	}
}

func TestServeRejectsBadSettings(t *testing.T) {
	t.Setenv("DASHBOARD_FEATURES_DISABLED", "reportng")

	prev := settingsPath
	settingsPath = ""
	t.Cleanup(func() { settingsPath = prev })

	err := serveCmd.RunE(serveCmd, nil)
	assert.ErrorIs(t, err, errInvalidSettings)
	assert.ErrorContains(t, err, "reportng")
}
