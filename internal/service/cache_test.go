package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

func curvePoints(n int) []model.ConcentrationPoint {
	points := make([]model.ConcentrationPoint, n)
	for i := range points {
		points[i] = model.ConcentrationPoint{
			Date:   time.Date(2026, 2, 1+i, 0, 0, 0, 0, time.UTC),
			Actual: float64(n - i),
		}
	}
	return points
}

func TestTTLCache_GetSet(t *testing.T) {
	c := newTTLCache(4, time.Minute)
	defer c.Stop()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("curve-a", curvePoints(3))
	got, ok := c.Get("curve-a")
	require.True(t, ok)
	assert.Len(t, got, 3)

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}

func TestTTLCache_Expiration(t *testing.T) {
	c := newTTLCache(4, 10*time.Millisecond)
	defer c.Stop()

	c.Set("curve-a", curvePoints(1))
	time.Sleep(150 * time.Millisecond)

	_, ok := c.Get("curve-a")
	assert.False(t, ok)
}

func TestTTLCache_LRUEviction(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", curvePoints(1))
	c.Set("b", curvePoints(1))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", curvePoints(1))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)

	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c := newTTLCache(4, time.Minute)
	defer c.Stop()

	c.Set("a", curvePoints(1))
	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("b", curvePoints(1))
	c.Clear()
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestShardedCurveCache(t *testing.T) {
	sc := NewShardedCurveCache(64, time.Minute, 4)
	defer sc.Stop()

	for i := 0; i < 32; i++ {
		sc.Set(fmt.Sprintf("user-%d", i), curvePoints(2))
	}

	for i := 0; i < 32; i++ {
		got, ok := sc.Get(fmt.Sprintf("user-%d", i))
		require.True(t, ok, "user-%d", i)
		assert.Len(t, got, 2)
	}

	m := sc.Metrics()
	assert.Equal(t, int64(32), m.Hits)
	assert.Equal(t, 32, m.Size)
	assert.Equal(t, 64, m.Capacity)

	sc.Invalidate("user-0")
	_, ok := sc.Get("user-0")
	assert.False(t, ok)

	sc.Clear()
	assert.Equal(t, 0, sc.Metrics().Size)
}

func TestShardedCurveCache_ShardCountRounding(t *testing.T) {
	sc := NewShardedCurveCache(100, time.Minute, 3)
	defer sc.Stop()

	// 3 rounds up to 4 shards of capacity 25 each.
	assert.Equal(t, 100, sc.Metrics().Capacity)
	assert.Equal(t, 4, sc.numShards)
}
