// Package service contains the business logic for the pen tracking service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/metrics"
	"github.com/Askwho/mounjaro-hub/internal/service/cache"
)

// cachedTime provides a cached time value updated periodically.
// This reduces the overhead of frequent time.Now() calls.
var (
	cachedTime     atomic.Value
	cachedTimeOnce sync.Once
)

func init() {
	initCachedTime()
}

// initCachedTime starts the background time updater.
func initCachedTime() {
	cachedTimeOnce.Do(func() {
		cachedTime.Store(time.Now())
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for t := range ticker.C {
				cachedTime.Store(t)
			}
		}()
	})
}

// cacheNow returns the cached current time (updated every 100ms).
// Use this for non-critical time checks like cache expiration.
func cacheNow() time.Time {
	if t := cachedTime.Load(); t != nil {
		if cachedT, ok := t.(time.Time); ok {
			return cachedT
		}
	}
	return time.Now()
}

// ShardedCurveCache distributes curve entries across multiple shards to
// reduce lock contention when many users request charts concurrently.
type ShardedCurveCache struct {
	shards    []*ttlCache
	numShards int
	shardMask uint32
}

// NewShardedCurveCache creates a sharded cache with the specified total
// capacity, TTL, and number of shards. numShards is rounded up to a power
// of 2 so shard selection stays a mask operation.
func NewShardedCurveCache(capacity int, ttl time.Duration, numShards int) *ShardedCurveCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShardCapacity := capacity / numShards
	if perShardCapacity < 1 {
		perShardCapacity = 1
	}

	shards := make([]*ttlCache, numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShardCapacity, ttl)
	}

	return &ShardedCurveCache{
		shards:    shards,
		numShards: numShards,
		shardMask: uint32(numShards - 1),
	}
}

// getShard returns the shard for the given key.
func (sc *ShardedCurveCache) getShard(key string) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (sc *ShardedCurveCache) Get(key string) ([]model.ConcentrationPoint, bool) {
	return sc.getShard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (sc *ShardedCurveCache) Set(key string, value []model.ConcentrationPoint) {
	sc.getShard(key).Set(key, value)
}

// Invalidate removes a key from the appropriate shard.
func (sc *ShardedCurveCache) Invalidate(key string) {
	sc.getShard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCurveCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop gracefully shuts down all shards.
func (sc *ShardedCurveCache) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCurveCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache provides thread-safe LRU caching with TTL expiration.
// It implements the cache.Cache interface.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry represents a single cached curve with expiration tracking.
type cacheEntry struct {
	key       string
	value     []model.ConcentrationPoint
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates a TTL-based LRU cache with the specified capacity and
// TTL. A background goroutine periodically cleans up expired entries.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop gracefully shuts down the cache and cleans up resources.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get retrieves a value from the cache if it exists and hasn't expired.
func (c *ttlCache) Get(key string) ([]model.ConcentrationPoint, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	// Use time.Now() for accurate expiration check; the cached clock can be
	// up to 100ms stale.
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if _, stillExists := c.items[key]; stillExists {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	c.mu.Lock()
	c.moveToFront(entry)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or updates a value in the cache with the configured TTL.
// If the cache is at capacity, the least recently used entry is evicted.
func (c *ttlCache) Set(key string, value []model.ConcentrationPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = cacheNow().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: cacheNow().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// startCleanup runs an adaptive background cleanup routine.
func (c *ttlCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Only sweep when the cache is more than 80% full.
			c.mu.RLock()
			shouldCleanup := len(c.items) > (c.capacity * 80 / 100)
			c.mu.RUnlock()

			if shouldCleanup {
				c.cleanup()
			}
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries from the cache.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentTime := cacheNow()
	for _, entry := range c.items {
		if currentTime.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

// removeEntry removes an entry from both the map and the linked list.
func (c *ttlCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

// moveToFront moves an existing entry to the front of the LRU list.
func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

// addToFront adds an entry to the front of the LRU list.
func (c *ttlCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// remove removes an entry from the linked list without touching the map.
func (c *ttlCache) remove(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

// removeTail removes the least recently used entry from the cache.
func (c *ttlCache) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.remove(c.tail)
}

// Invalidate removes a specific key from the cache.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries from the cache.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}
