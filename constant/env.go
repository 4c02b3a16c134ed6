package constant

// Environment variable names
const (
	// EnvPrefix is the prefix viper uses for every settings override
	EnvPrefix = "DASHBOARD"

	// EnvSettingsFile points to an optional TOML settings file
	EnvSettingsFile = "DASHBOARD_SETTINGS"

	// EnvIsDevelopment enables debug logging of render cache activity when true
	EnvIsDevelopment = "IS_DEVELOPMENT"
)
