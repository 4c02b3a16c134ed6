package dashboard

import "github.com/LerianStudio/lib-dashboard-go/internal/config"

// Settings is the runtime configuration of the library (sources, refresh,
// events, rendering). Start from DefaultSettings or LoadSettings and adjust fields.
type Settings = config.Settings

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return config.Default()
}

// LoadSettings reads DASHBOARD_SETTINGS (TOML) and DASHBOARD_* environment overrides.
func LoadSettings() (Settings, error) {
	return config.Load()
}
