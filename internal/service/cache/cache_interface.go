// Package cache defines the caching contract used by the analytics services.
package cache

import "github.com/Askwho/mounjaro-hub/internal/domain/model"

// Cache defines the interface for concentration curve caching.
type Cache interface {
	Get(key string) ([]model.ConcentrationPoint, bool)
	Set(key string, value []model.ConcentrationPoint)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
