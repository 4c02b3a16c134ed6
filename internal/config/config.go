package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/spf13/viper"
)

// Settings holds the runtime configuration of the dashboard library.
type Settings struct {
	Customization CustomizationSettings
	Remote        RemoteSettings
	S3            S3Settings
	Events        EventSettings
	Refresh       RefreshSettings
	Render        RenderSettings
	Features      FeatureSettings
	HTTP          HTTPSettings
}

// CustomizationSettings points to a local override document.
type CustomizationSettings struct {
	Path string
}

// RemoteSettings configures the HTTP override document source.
type RemoteSettings struct {
	URL     string
	Timeout time.Duration
}

// S3Settings configures the object storage override document source.
type S3Settings struct {
	Bucket   string
	Key      string
	Region   string
	Endpoint string
}

// EventSettings configures reload notifications.
type EventSettings struct {
	NATSURL string `mapstructure:"nats_url"`
	Subject string
}

// RefreshSettings configures background reloads. A zero interval disables them.
type RefreshSettings struct {
	Interval time.Duration
}

// RenderSettings holds presentation settings.
type RenderSettings struct {
	Currency string
}

// FeatureSettings lists feature flags forced off regardless of the customization.
type FeatureSettings struct {
	Disabled string
}

// HTTPSettings configures the standalone server.
type HTTPSettings struct {
	Address string
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Remote:  RemoteSettings{Timeout: constant.DefaultHTTPTimeoutSeconds * time.Second},
		S3:      S3Settings{Region: "us-east-1"},
		Events:  EventSettings{Subject: constant.SubjectCustomizationReloaded},
		Refresh: RefreshSettings{Interval: constant.DefaultRefreshIntervalMinutes * time.Minute},
		Render:  RenderSettings{Currency: constant.DefaultCurrencySymbol},
		HTTP:    HTTPSettings{Address: constant.DefaultHTTPAddress},
	}
}

// Load reads settings from the optional settings file and the environment.
// Env var overrides use prefix DASHBOARD_ (e.g. DASHBOARD_REMOTE_URL).
func Load() (Settings, error) {
	return LoadFile(os.Getenv(constant.EnvSettingsFile))
}

// LoadFile reads settings from path (TOML) when non-empty, then applies env overrides.
func LoadFile(path string) (Settings, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("customization.path", def.Customization.Path)
	v.SetDefault("remote.url", def.Remote.URL)
	v.SetDefault("remote.timeout", def.Remote.Timeout)
	v.SetDefault("s3.bucket", def.S3.Bucket)
	v.SetDefault("s3.key", def.S3.Key)
	v.SetDefault("s3.region", def.S3.Region)
	v.SetDefault("s3.endpoint", def.S3.Endpoint)
	v.SetDefault("events.nats_url", def.Events.NATSURL)
	v.SetDefault("events.subject", def.Events.Subject)
	v.SetDefault("refresh.interval", def.Refresh.Interval)
	v.SetDefault("render.currency", def.Render.Currency)
	v.SetDefault("features.disabled", def.Features.Disabled)
	v.SetDefault("http.address", def.HTTP.Address)

	v.SetConfigType("toml")

	v.SetEnvPrefix(constant.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	return s, nil
}
