package cache

import (
	"strconv"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/dgraph-io/ristretto/v2"
)

// Manager caches rendered tab fragments
type Manager struct {
	cache  *ristretto.Cache[string, []byte]
	logger log.Logger
	debug  bool
}

// New creates a new cache manager. Cache activity is logged at debug level
// only when IS_DEVELOPMENT is true.
func New(logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.CacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		logger: logger,
		debug:  commons.GetenvBoolOrDefault(constant.EnvIsDevelopment, false),
	}, nil
}

// Key builds the cache key of a rendered fragment. The version scopes entries
// to one customization so a reload never serves stale markup.
func Key(version uint64, tabID, format string) string {
	return strconv.FormatUint(version, 10) + ":" + tabID + ":" + format
}

// Get retrieves a rendered fragment
func (m *Manager) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		m.debugf("Render cache hit for %s", key)
		return val, true
	}

	return nil, false
}

// Store caches a rendered fragment with a fixed TTL, costed by its size
func (m *Manager) Store(key string, fragment []byte) {
	m.cache.SetWithTTL(key, fragment, int64(len(fragment)), constant.CacheTTL)
	m.cache.Wait()

	m.debugf("Stored rendered fragment %s (%d bytes)", key, len(fragment))
}

// Clear drops every cached fragment
func (m *Manager) Clear() {
	m.cache.Clear()
	m.debugf("Render cache cleared")
}

// Close releases the cache goroutines
func (m *Manager) Close() {
	m.cache.Close()
}

func (m *Manager) debugf(format string, args ...any) {
	if m.debug {
		m.logger.Debugf(format, args...)
	}
}
