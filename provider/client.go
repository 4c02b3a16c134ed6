package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	dashboard "github.com/LerianStudio/lib-dashboard-go"
	"github.com/LerianStudio/lib-dashboard-go/component"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	libErr "github.com/LerianStudio/lib-dashboard-go/error"
	"github.com/LerianStudio/lib-dashboard-go/internal/api"
	"github.com/LerianStudio/lib-dashboard-go/internal/cache"
	"github.com/LerianStudio/lib-dashboard-go/internal/document"
	"github.com/LerianStudio/lib-dashboard-go/internal/events"
	"github.com/LerianStudio/lib-dashboard-go/internal/refresh"
	"github.com/LerianStudio/lib-dashboard-go/internal/shutdown"
	"github.com/LerianStudio/lib-dashboard-go/internal/storage"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/LerianStudio/lib-dashboard-go/util"
	"github.com/LerianStudio/lib-dashboard-go/validation"
	"github.com/google/uuid"
)

// Client owns the active customization: it layers override documents over the
// preset, validates the result, swaps it in atomically and renders tabs.
type Client struct {
	settings        dashboard.Settings
	sources         []document.Source
	cacheManager    *cache.Manager
	refreshManager  *refresh.Manager
	shutdownManager *shutdown.Manager
	publisher       events.Publisher
	logger          log.Logger
	instanceID      string

	reloadMu sync.Mutex
	current  atomic.Pointer[snapshot]
	version  atomic.Uint64
}

type snapshot struct {
	customization *dashboard.Customization
	version       uint64
	sources       []string
	loadedAt      time.Time
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	sources    []document.Source
	publisher  events.Publisher
	httpClient *http.Client
}

// WithSources replaces the sources derived from settings.
func WithSources(sources ...document.Source) Option {
	return func(o *options) {
		o.sources = sources
	}
}

// WithPublisher replaces the publisher derived from settings.
func WithPublisher(p events.Publisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}

// WithHTTPClient sets the HTTP client used by the remote source (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// New creates a provider client. Nothing is loaded until Load is called.
func New(settings dashboard.Settings, logger *log.Logger, opts ...Option) (*Client, error) {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if err := util.ValidateSettings(&settings, l); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cacheManager, err := cache.New(l)
	if err != nil {
		l.Errorf("Failed to initialize render cache: %s", err.Error())
		return nil, err
	}

	sources := o.sources
	if sources == nil {
		sources, err = sourcesFromSettings(settings, o.httpClient, l)
		if err != nil {
			cacheManager.Close()
			return nil, err
		}
	}

	publisher := o.publisher
	if publisher == nil {
		publisher, err = publisherFromSettings(settings, l)
		if err != nil {
			cacheManager.Close()
			return nil, err
		}
	}

	c := &Client{
		settings:        settings,
		sources:         sources,
		cacheManager:    cacheManager,
		shutdownManager: shutdown.New(),
		publisher:       publisher,
		logger:          l,
		instanceID:      uuid.NewString(),
	}

	c.refreshManager = refresh.New(c, settings.Refresh.Interval, l)
	c.shutdownManager.OnTerminate(c.refreshManager.Shutdown)

	return c, nil
}

func sourcesFromSettings(s dashboard.Settings, httpClient *http.Client, l log.Logger) ([]document.Source, error) {
	var sources []document.Source

	if s.Customization.Path != "" {
		sources = append(sources, document.FileSource{Path: s.Customization.Path})
	}

	if s.Remote.URL != "" {
		sources = append(sources, api.New(s.Remote.URL, s.Remote.Timeout, httpClient, l))
	}

	if s.S3.Bucket != "" {
		src, err := storage.NewS3Source(context.Background(), s.S3.Bucket, s.S3.Key, s.S3.Region, s.S3.Endpoint)
		if err != nil {
			l.Errorf("Failed to initialize s3 source: %s", err.Error())
			return nil, err
		}

		sources = append(sources, src)
	}

	return sources, nil
}

func publisherFromSettings(s dashboard.Settings, l log.Logger) (events.Publisher, error) {
	if s.Events.NATSURL == "" {
		return &events.NoopPublisher{}, nil
	}

	p, err := events.NewNATSPublisher(s.Events.NATSURL)
	if err != nil {
		l.Errorf("Failed to connect reload publisher: %s", err.Error())
		return nil, err
	}

	return p, nil
}

// Load performs the startup load. A failure here is unrecoverable and invokes
// the termination handler, which panics unless the host installed its own.
func (c *Client) Load(ctx context.Context) error {
	if err := c.reload(ctx); err != nil {
		c.logger.Errorf("Customization load failed: %v (code %s)", err, constant.ErrCustomizationLoadFailed.Error())
		c.shutdownManager.Terminate("customization load failed: " + err.Error())

		return err
	}

	return nil
}

// Reload rebuilds the customization. On failure the previous one stays active.
func (c *Client) Reload(ctx context.Context) error {
	err := c.reload(ctx)
	if err == nil {
		return nil
	}

	if libErr.IsTransient(err) {
		c.logger.Warnf("Keeping previous customization after transient source error: %v", err)
	} else {
		c.logger.Errorf("Keeping previous customization after reload failure: %v", err)
	}

	return err
}

func (c *Client) reload(ctx context.Context) error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	cust, names, err := c.build(ctx)
	if err != nil {
		return err
	}

	snap := &snapshot{
		customization: cust,
		version:       c.version.Add(1),
		sources:       names,
		loadedAt:      time.Now(),
	}

	c.current.Store(snap)
	c.cacheManager.Clear()

	c.logger.Infof("Customization version %d active (%s)", snap.version, cust.Config.Title)

	event := events.Reloaded{
		EventID:    uuid.NewString(),
		InstanceID: c.instanceID,
		Version:    snap.version,
		Title:      cust.Config.Title,
		Tabs:       cust.TabIDs(),
		Sources:    names,
		At:         snap.loadedAt.UTC(),
	}

	if err := c.publisher.Publish(ctx, c.settings.Events.Subject, event); err != nil {
		c.logger.Warnf("Failed to publish reload event: %v", err)
	}

	return nil
}

func (c *Client) build(ctx context.Context) (*dashboard.Customization, []string, error) {
	base := dashboard.Default(dashboard.WithCurrency(c.settings.Render.Currency))
	cfg, data := base.Config, base.Data

	names := make([]string, 0, len(c.sources))

	for _, src := range c.sources {
		raw, format, err := src.Fetch(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: fetch %s: %w", constant.ErrCustomizationLoadFailed, src.Name(), err)
		}

		doc, err := document.Decode(raw, format)
		if err != nil {
			return nil, nil, fmt.Errorf("decode %s: %w", src.Name(), err)
		}

		cfg, data = document.Apply(cfg, data, doc)
		names = append(names, src.Name())
	}

	for _, name := range pkg.ParseList(c.settings.Features.Disabled) {
		cfg.Features.Set(name, false)
	}

	if err := validation.Validate(cfg, base.Components); err != nil {
		return nil, nil, err
	}

	return &dashboard.Customization{Config: cfg, Components: base.Components, Data: data}, names, nil
}

func (c *Client) snapshot() (*snapshot, error) {
	snap := c.current.Load()
	if snap == nil {
		return nil, fmt.Errorf("%w: nothing loaded yet", constant.ErrCustomizationLoadFailed)
	}

	return snap, nil
}

// Current returns a copy of the active customization.
func (c *Client) Current() (*dashboard.Customization, error) {
	snap, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	return snap.customization.Clone(), nil
}

// Version returns the version of the active customization, zero before the first load.
func (c *Client) Version() uint64 {
	if snap := c.current.Load(); snap != nil {
		return snap.version
	}

	return 0
}

// Sources returns the names of the sources layered into the active customization.
func (c *Client) Sources() []string {
	if snap := c.current.Load(); snap != nil {
		return append([]string(nil), snap.sources...)
	}

	return nil
}

// Feature reports whether a declared feature flag is on in the active customization.
func (c *Client) Feature(name string) (bool, error) {
	snap, err := c.snapshot()
	if err != nil {
		return false, err
	}

	return snap.customization.Feature(name)
}

// RenderTab renders the component of a tab, serving repeated requests from cache.
// It returns the customization version the fragment was rendered from.
func (c *Client) RenderTab(ctx context.Context, tabID, format string) ([]byte, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	snap, err := c.snapshot()
	if err != nil {
		return nil, 0, err
	}

	format = strings.ToLower(format)
	if format == "" {
		format = constant.FormatHTML
	}

	comp, err := snap.customization.Component(tabID)
	if err != nil {
		return nil, snap.version, err
	}

	key := cache.Key(snap.version, tabID, format)
	if fragment, ok := c.cacheManager.Get(key); ok {
		return fragment, snap.version, nil
	}

	cfg := snap.customization.Config

	fragment, err := component.Render(comp, &cfg, format)
	if err != nil {
		return nil, snap.version, err
	}

	c.cacheManager.Store(key, fragment)

	return fragment, snap.version, nil
}

// StartBackgroundRefresh reloads periodically when a refresh interval is configured
func (c *Client) StartBackgroundRefresh(ctx context.Context) {
	c.refreshManager.Start(ctx)
}

// ShutdownBackgroundRefresh stops the background refresh process
func (c *Client) ShutdownBackgroundRefresh() {
	c.refreshManager.Shutdown()
}

// SetTerminationHandler allows customizing how the application terminates when the startup load fails
func (c *Client) SetTerminationHandler(handler func(reason string)) {
	c.shutdownManager.SetHandler(handler)
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// InstanceID identifies this client in published events
func (c *Client) InstanceID() string {
	return c.instanceID
}

// Close stops background work and releases the cache and publisher
func (c *Client) Close() error {
	c.refreshManager.Shutdown()
	c.cacheManager.Close()

	if err := c.publisher.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("close publisher: %w", err)
	}

	return nil
}
