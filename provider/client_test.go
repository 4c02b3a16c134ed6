package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	dashboard "github.com/LerianStudio/lib-dashboard-go"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/internal/config"
	"github.com/LerianStudio/lib-dashboard-go/internal/document"
	"github.com/LerianStudio/lib-dashboard-go/internal/events"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/LerianStudio/lib-dashboard-go/test/helper"
	"github.com/LerianStudio/lib-dashboard-go/test/helper/testlogger"
	"github.com/LerianStudio/lib-dashboard-go/test/mocks"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const acmeJSON = `{"title": "Acme Estates", "primaryColor": "#0F766E"}`

func newClient(t *testing.T, settings dashboard.Settings, opts ...Option) (*Client, *testlogger.TestLogger) {
	t.Helper()

	logger := testlogger.New()

	c, err := New(settings, logger.Ptr(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, logger
}

func TestLoadDefaults(t *testing.T) {
	c, _ := newClient(t, config.Default())

	require.NoError(t, c.Load(context.Background()))

	cust, err := c.Current()
	require.NoError(t, err)

	assert.Equal(t, uint64(1), c.Version())
	assert.Equal(t, "QuoinStone Group - Property Management", cust.Config.Title)
	assert.Empty(t, c.Sources())
	assert.NotEmpty(t, c.InstanceID())
}

func TestCurrentBeforeLoad(t *testing.T) {
	c, _ := newClient(t, config.Default())

	_, err := c.Current()
	assert.ErrorIs(t, err, constant.ErrCustomizationLoadFailed)
	assert.Zero(t, c.Version())

	_, _, err = c.RenderTab(context.Background(), constant.TabPropertyOccupation, "")
	assert.ErrorIs(t, err, constant.ErrCustomizationLoadFailed)
}

func TestLoadLayersFileAndDisabledFeatures(t *testing.T) {
	settings := config.Default()
	settings.Customization.Path = helper.WriteDocument(t, "acme.toml", `
title = "Acme Estates"

[features]
analytics = false
`)
	settings.Features.Disabled = "reporting"
	settings.Render.Currency = "$"

	c, _ := newClient(t, settings)
	require.NoError(t, c.Load(context.Background()))

	cust, err := c.Current()
	require.NoError(t, err)

	assert.Equal(t, "Acme Estates", cust.Config.Title)
	assert.Equal(t, "#1E40AF", cust.Config.PrimaryColor)
	assert.Equal(t, map[string]bool{
		constant.FeatureDataImport:      true,
		constant.FeatureAnalytics:       false,
		constant.FeatureReporting:       false,
		constant.FeatureEmailAutomation: true,
	}, cust.Config.Features.AsMap())
	assert.Equal(t, []string{settings.Customization.Path}, c.Sources())

	on, err := c.Feature(constant.FeatureReporting)
	require.NoError(t, err)
	assert.False(t, on)

	fragment, _, err := c.RenderTab(context.Background(), constant.TabInvoiceProcessing, constant.FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(fragment), "$7500")
}

func TestLoadFailureTerminates(t *testing.T) {
	settings := config.Default()
	settings.Customization.Path = helper.WriteDocument(t, "bad.json", `{"primaryColor": "blue"}`)

	c, logger := newClient(t, settings)

	var reason string

	c.SetTerminationHandler(func(r string) { reason = r })

	err := c.Load(context.Background())
	helper.AssertFieldRejected(t, err, "primaryColor")
	assert.Contains(t, reason, "customization load failed")
	assert.True(t, logger.Contains("ERROR", "Customization load failed"))
	assert.Zero(t, c.Version())
}

func TestLoadFailurePanicsByDefault(t *testing.T) {
	settings := config.Default()
	settings.Customization.Path = helper.WriteDocument(t, "bad.toml", "nonsense = true\n")

	c, _ := newClient(t, settings)

	assert.Panics(t, func() { _ = c.Load(context.Background()) })
}

func TestReloadKeepsPreviousOnTransientFailure(t *testing.T) {
	srv := helper.NewDocumentServer(t, "application/json", acmeJSON)

	settings := config.Default()
	settings.Remote.URL = srv.URL + "/dashboard"

	c, logger := newClient(t, settings)
	require.NoError(t, c.Load(context.Background()))

	srv.Respond(http.StatusBadGateway, "")

	err := c.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, constant.ErrCustomizationLoadFailed)
	assert.True(t, logger.Contains("WARN", "Keeping previous customization"))

	cust, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, "Acme Estates", cust.Config.Title)
	assert.Equal(t, uint64(1), c.Version())
}

func TestReloadKeepsPreviousOnInvalidDocument(t *testing.T) {
	srv := helper.NewDocumentServer(t, "application/json", acmeJSON)

	settings := config.Default()
	settings.Remote.URL = srv.URL

	c, logger := newClient(t, settings)
	require.NoError(t, c.Load(context.Background()))

	srv.Respond(http.StatusOK, `{"title": "", "secondaryColor": "#zzz"}`)

	err := c.Reload(context.Background())

	var fieldsErr pkg.ValidationKnownFieldsError
	require.ErrorAs(t, err, &fieldsErr)
	assert.Contains(t, fieldsErr.Fields, "title")
	assert.Contains(t, fieldsErr.Fields, "secondaryColor")
	assert.True(t, logger.Contains("ERROR", "Keeping previous customization"))

	cust, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, "Acme Estates", cust.Config.Title)
}

func TestReloadSwapsAndInvalidatesCache(t *testing.T) {
	t.Setenv(constant.EnvIsDevelopment, "true")

	srv := helper.NewDocumentServer(t, "application/json", acmeJSON)

	settings := config.Default()
	settings.Remote.URL = srv.URL

	c, logger := newClient(t, settings)
	require.NoError(t, c.Load(context.Background()))

	first, v1, err := c.RenderTab(context.Background(), constant.TabPropertyOccupation, constant.FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(first), `data-accent="#0F766E"`)

	again, _, err := c.RenderTab(context.Background(), constant.TabPropertyOccupation, constant.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.True(t, logger.Contains("DEBUG", "cache hit"))

	srv.Respond(http.StatusOK, `{"primaryColor": "#B91C1C"}`)
	require.NoError(t, c.Reload(context.Background()))

	second, v2, err := c.RenderTab(context.Background(), constant.TabPropertyOccupation, constant.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, v1+1, v2)
	assert.Contains(t, string(second), `data-accent="#B91C1C"`)
}

func TestRenderTabErrors(t *testing.T) {
	c, _ := newClient(t, config.Default())
	require.NoError(t, c.Load(context.Background()))

	_, _, err := c.RenderTab(context.Background(), "tenantScreening", constant.FormatHTML)
	assert.ErrorIs(t, err, constant.ErrUnknownTab)

	_, _, err = c.RenderTab(context.Background(), constant.TabPropertyOccupation, "pdf")
	assert.ErrorIs(t, err, constant.ErrUnsupportedFormat)

	text, _, err := c.RenderTab(context.Background(), constant.TabPropertyOccupation, "TEXT")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "Property Occupation Management"))
}

func TestReloadPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)

	var got []events.Reloaded

	publisher.EXPECT().
		Publish(gomock.Any(), constant.SubjectCustomizationReloaded, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event any) error {
			got = append(got, event.(events.Reloaded))
			return nil
		}).
		Times(2)
	publisher.EXPECT().Close().Return(nil)

	c, _ := newClient(t, config.Default(), WithPublisher(publisher))

	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.Reload(context.Background()))

	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].Version)
	assert.Equal(t, uint64(2), got[1].Version)
	assert.Equal(t, c.InstanceID(), got[0].InstanceID)
	assert.NotEqual(t, got[0].EventID, got[1].EventID)
	assert.Equal(t, []string{constant.TabPropertyOccupation, constant.TabInvoiceProcessing}, got[0].Tabs)
}

func TestReloadEventOverNATS(t *testing.T) {
	url := helper.StartNATS(t)

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(constant.SubjectCustomizationReloaded, ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	settings := config.Default()
	settings.Events.NATSURL = url

	c, _ := newClient(t, settings)
	require.NoError(t, c.Load(context.Background()))

	select {
	case msg := <-ch:
		var event events.Reloaded
		require.NoError(t, json.Unmarshal(msg.Data, &event))
		assert.Equal(t, uint64(1), event.Version)
		assert.Equal(t, "QuoinStone Group - Property Management", event.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}
}

func TestBackgroundRefresh(t *testing.T) {
	srv := helper.NewDocumentServer(t, "application/json", acmeJSON)

	settings := config.Default()
	settings.Remote.URL = srv.URL
	settings.Refresh.Interval = 10 * time.Millisecond

	c, _ := newClient(t, settings)
	require.NoError(t, c.Load(context.Background()))

	srv.Respond(http.StatusOK, `{"title": "Acme Estates (refreshed)"}`)
	c.StartBackgroundRefresh(context.Background())

	require.Eventually(t, func() bool {
		cust, err := c.Current()
		return err == nil && cust.Config.Title == "Acme Estates (refreshed)"
	}, 2*time.Second, 10*time.Millisecond)

	c.ShutdownBackgroundRefresh()
	assert.GreaterOrEqual(t, srv.Hits(), 2)
}

func TestWithSources(t *testing.T) {
	settings := config.Default()
	settings.Customization.Path = "/does/not/exist.toml"

	path := helper.WriteDocument(t, "override.json", `{"userName": "Jo Bloggs"}`)

	c, _ := newClient(t, settings, WithSources(document.FileSource{Path: path}))
	require.NoError(t, c.Load(context.Background()))

	cust, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, "Jo Bloggs", cust.Config.UserName)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.Features.Disabled = "darkMode"

	_, err := New(settings, testlogger.New().Ptr())
	assert.ErrorContains(t, err, "darkMode")
}
