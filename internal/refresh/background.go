package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// Reloader defines the interface for reloading the customization
type Reloader interface {
	Reload(ctx context.Context) error
}

// Manager handles periodic background reloads of the customization
type Manager struct {
	refreshInterval       time.Duration
	started               bool
	mu                    sync.Mutex
	cancel                context.CancelFunc
	done                  chan struct{}
	reloader              Reloader
	logger                log.Logger
	lastAttemptedRefresh  time.Time
	lastSuccessfulRefresh time.Time
}

// New creates a new background refresh manager
func New(reloader Reloader, refreshInterval time.Duration, logger log.Logger) *Manager {
	return &Manager{
		reloader:        reloader,
		refreshInterval: refreshInterval,
		logger:          logger,
	}
}

// Start begins the background refresh process. It is a no-op when already
// started or when the interval is not positive.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started || m.refreshInterval <= 0 {
		m.mu.Unlock()
		return
	}

	refreshCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	m.started = true
	done := m.done
	m.mu.Unlock()

	ticker := time.NewTicker(m.refreshInterval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		m.logger.Infof("Starting background customization refresh every %s", m.refreshInterval)

		for {
			select {
			case <-refreshCtx.Done():
				m.logger.Info("Background customization refresh stopped")
				return

			case <-ticker.C:
				m.attemptReload(refreshCtx)
			}
		}
	}()
}

// Shutdown stops the background refresh process and waits for the loop to exit
func (m *Manager) Shutdown() {
	m.mu.Lock()

	if !m.started {
		m.mu.Unlock()
		return
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	done := m.done
	m.started = false
	m.mu.Unlock()

	<-done

	m.logger.Info("Background customization refresh shutdown complete")
}

// LastRefresh returns the time of the last attempted and last successful reload
func (m *Manager) LastRefresh() (attempted, succeeded time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastAttemptedRefresh, m.lastSuccessfulRefresh
}

// attemptReload performs one reload and records its outcome
func (m *Manager) attemptReload(ctx context.Context) {
	m.mu.Lock()
	m.lastAttemptedRefresh = time.Now()
	m.mu.Unlock()

	if err := m.reloader.Reload(ctx); err != nil {
		m.logger.Errorf("Customization reload failed: %v", err)
		return
	}

	m.mu.Lock()
	m.lastSuccessfulRefresh = time.Now()
	m.mu.Unlock()

	m.logger.Debugf("Customization reload successful")
}
