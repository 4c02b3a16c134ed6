package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileDefaults(t *testing.T) {
	s, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, Default(), s)
	assert.Equal(t, 5*time.Second, s.Remote.Timeout)
	assert.Equal(t, constant.SubjectCustomizationReloaded, s.Events.Subject)
	assert.Equal(t, "£", s.Render.Currency)
	assert.Zero(t, s.Refresh.Interval)
}

func TestLoadFileReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	body := `
[customization]
path = "/etc/dashboard/acme.toml"

[remote]
url = "https://config.example.com/dashboard.json"
timeout = "2s"

[events]
nats_url = "nats://127.0.0.1:4222"

[refresh]
interval = "15m"

[features]
disabled = "emailAutomation, reporting"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/dashboard/acme.toml", s.Customization.Path)
	assert.Equal(t, "https://config.example.com/dashboard.json", s.Remote.URL)
	assert.Equal(t, 2*time.Second, s.Remote.Timeout)
	assert.Equal(t, "nats://127.0.0.1:4222", s.Events.NATSURL)
	assert.Equal(t, 15*time.Minute, s.Refresh.Interval)
	assert.Equal(t, "emailAutomation, reporting", s.Features.Disabled)
	assert.Equal(t, constant.DefaultHTTPAddress, s.HTTP.Address, "unset keys keep defaults")
}

func TestLoadFileEnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_REMOTE_URL", "http://localhost:9000/doc.toml")
	t.Setenv("DASHBOARD_RENDER_CURRENCY", "$")
	t.Setenv("DASHBOARD_S3_BUCKET", "branding")

	s, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/doc.toml", s.Remote.URL)
	assert.Equal(t, "$", s.Render.Currency)
	assert.Equal(t, "branding", s.S3.Bucket)
}

func TestLoadUsesSettingsFileVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[http]\naddress = \"0.0.0.0:9999\"\n"), 0o600))

	t.Setenv(constant.EnvSettingsFile, path)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", s.HTTP.Address)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
