package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/LerianStudio/lib-dashboard-go/internal/document"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Print the effective customization as JSON",
	GroupID: "inspect",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cust, err := current(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		out, err := json.MarshalIndent(cust.Config, "", "  ")
		if err != nil {
			return fmt.Errorf("encode customization: %w", err)
		}

		fmt.Fprintln(os.Stdout, string(out))

		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Load every configured source and validate the result",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cust, err := current(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		if jsonOutput {
			out, _ := json.MarshalIndent(map[string]any{
				"valid":   true,
				"version": p.Version(),
				"title":   cust.Config.Title,
				"sources": p.Sources(),
			}, "", "  ")
			fmt.Fprintln(os.Stdout, string(out))

			return nil
		}

		sources := p.Sources()
		if len(sources) == 0 {
			sources = []string{"preset"}
		}

		fmt.Fprintf(os.Stdout, "✓ %s is valid (%d tabs, sources: %v)\n", cust.Config.Title, len(cust.TabIDs()), sources)

		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Write the effective customization as a TOML override document",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cust, err := current(cmd.Context())
		if err != nil {
			return err
		}
		defer p.Close()

		out, err := document.EncodeTOML(cust.Config, cust.Data)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(out)

		return err
	},
}
