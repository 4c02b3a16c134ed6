package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	dashboard "github.com/LerianStudio/lib-dashboard-go"
	"github.com/LerianStudio/lib-dashboard-go/internal/config"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/LerianStudio/lib-dashboard-go/provider"
	"github.com/spf13/cobra"
)

var errInvalidSettings = errors.New("invalid dashboard settings")

var (
	settingsPath string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:           "dashctl <command>",
	Short:         "Inspect, render and serve dashboard customizations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", os.Getenv("DASHBOARD_SETTINGS"), "settings file (TOML)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "inspect", Title: "Inspect:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tabsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(chartsCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadSettings() (dashboard.Settings, error) {
	return config.LoadFile(settingsPath)
}

// loadProvider builds a provider client and performs the initial load. A failed
// load is returned as an error instead of terminating the process.
func loadProvider(ctx context.Context) (*provider.Client, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	var logger log.Logger = zap.InitializeLogger()

	p, err := provider.New(settings, &logger)
	if err != nil {
		return nil, err
	}

	var reason string

	p.SetTerminationHandler(func(r string) { reason = r })

	if err := p.Load(ctx); err != nil {
		_ = p.Close()

		if reason != "" {
			return nil, fmt.Errorf("%s: %w", reason, err)
		}

		return nil, err
	}

	return p, nil
}

func current(ctx context.Context) (*provider.Client, *dashboard.Customization, error) {
	p, err := loadProvider(ctx)
	if err != nil {
		return nil, nil, err
	}

	cust, err := p.Current()
	if err != nil {
		_ = p.Close()
		return nil, nil, err
	}

	return p, cust, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// errorText expands validation failures into one line per rejected field.
func errorText(err error) string {
	var fieldsErr pkg.ValidationKnownFieldsError
	if !errors.As(err, &fieldsErr) {
		return strings.TrimSpace(err.Error())
	}

	paths := make([]string, 0, len(fieldsErr.Fields))
	for path := range fieldsErr.Fields {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var b strings.Builder

	b.WriteString(fieldsErr.Message)

	for _, path := range paths {
		fmt.Fprintf(&b, "\n  %s: %s", path, fieldsErr.Fields[path])
	}

	return b.String()
}
