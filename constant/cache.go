package constant

import "time"

// Cache configuration constants
const (
	// CacheTTL defines the time-to-live for cached rendered fragments
	CacheTTL = 1 * time.Hour
	// CacheNumCounters is the number of keys to track frequency (100K)
	CacheNumCounters = 1e5
	// CacheMaxCost is the maximum cost of cache (8MB of rendered output)
	CacheMaxCost = 8 << 20
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
)
