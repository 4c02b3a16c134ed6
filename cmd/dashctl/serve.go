package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/LerianStudio/lib-dashboard-go/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the customization API over HTTP",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			settings.HTTP.Address = addr
		}

		var logger log.Logger = zap.InitializeLogger()

		client, err := middleware.NewDashboardClientE(settings, &logger)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidSettings, err)
		}
		defer client.Close()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		client.Routes(app.Group("/api/v1/dashboard"))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)

		go func() {
			logger.Infof("Serving dashboard API on %s", settings.HTTP.Address)
			errCh <- app.Listen(settings.HTTP.Address)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down dashboard API")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return app.ShutdownWithContext(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (defaults to http.address)")
}
