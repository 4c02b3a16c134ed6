package middleware

import (
	"context"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	dashboard "github.com/LerianStudio/lib-dashboard-go"
	"github.com/LerianStudio/lib-dashboard-go/provider"
)

// DashboardClient is the public client API that exposes the customization to hosts
// over HTTP and gRPC. It's a wrapper around the internal provider client.
type DashboardClient struct {
	provider *provider.Client
	// initOnce ensures the startup load and background refresh happen only once
	// even when both HTTP routes and gRPC interceptors are used
	initOnce sync.Once
}

// NewDashboardClient creates a new dashboard client from settings.
// Invalid settings yield a nil client, which serves the default customization
// with every feature enabled. Use NewDashboardClientE to fail closed instead.
func NewDashboardClient(settings dashboard.Settings, logger *log.Logger, opts ...provider.Option) *DashboardClient {
	c, err := NewDashboardClientE(settings, logger, opts...)
	if err != nil {
		return nil
	}

	return c
}

// NewDashboardClientE creates a new dashboard client from settings and reports invalid settings
func NewDashboardClientE(settings dashboard.Settings, logger *log.Logger, opts ...provider.Option) (*DashboardClient, error) {
	p, err := provider.New(settings, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &DashboardClient{
		provider: p,
	}, nil
}

// NewDashboardClientFromEnv creates a client from DASHBOARD_SETTINGS and DASHBOARD_* variables
func NewDashboardClientFromEnv(logger *log.Logger, opts ...provider.Option) *DashboardClient {
	settings, err := dashboard.LoadSettings()
	if err != nil {
		if logger != nil {
			(*logger).Errorf("Failed to load dashboard settings: %v", err)
		}

		return nil
	}

	return NewDashboardClient(settings, logger, opts...)
}

// StartupLoad performs the initial customization load and starts the background refresh.
// It is safe to call multiple times; the work happens only once.
func (c *DashboardClient) StartupLoad() {
	c.startupLoad()
}

func (c *DashboardClient) startupLoad() {
	if c == nil || c.provider == nil {
		return
	}

	c.initOnce.Do(func() {
		bgCtx := context.Background()

		if err := c.provider.Load(bgCtx); err != nil {
			return
		}

		c.provider.StartBackgroundRefresh(bgCtx)
	})
}

// Customization returns a copy of the active customization
func (c *DashboardClient) Customization() (*dashboard.Customization, error) {
	if c == nil || c.provider == nil {
		return dashboard.Default(), nil
	}

	c.startupLoad()

	return c.provider.Current()
}

// Reload rebuilds the customization from its sources, keeping the previous one on failure
func (c *DashboardClient) Reload(ctx context.Context) error {
	if c == nil || c.provider == nil {
		return nil
	}

	return c.provider.Reload(ctx)
}

// Version returns the active customization version
func (c *DashboardClient) Version() uint64 {
	if c == nil || c.provider == nil {
		return 0
	}

	return c.provider.Version()
}

// FeatureEnabled reports whether a feature flag is on; unknown names return an error
func (c *DashboardClient) FeatureEnabled(name string) (bool, error) {
	if c == nil || c.provider == nil {
		return dashboard.Default().Feature(name)
	}

	c.startupLoad()

	return c.provider.Feature(name)
}

// SetTerminationHandler allows customizing how the application terminates when the startup load fails
func (c *DashboardClient) SetTerminationHandler(handler func(reason string)) {
	if c != nil && c.provider != nil {
		c.provider.SetTerminationHandler(handler)
	}
}

// ShutdownBackgroundRefresh stops the background refresh process
func (c *DashboardClient) ShutdownBackgroundRefresh() {
	if c != nil && c.provider != nil {
		c.provider.ShutdownBackgroundRefresh()
	}
}

// Close stops background work and releases resources
func (c *DashboardClient) Close() error {
	if c == nil || c.provider == nil {
		return nil
	}

	return c.provider.Close()
}

// GetLogger returns the logger used by the client
func (c *DashboardClient) GetLogger() log.Logger {
	if c == nil || c.provider == nil {
		return zap.InitializeLogger()
	}

	return c.provider.GetLogger()
}
