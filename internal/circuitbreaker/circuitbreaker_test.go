//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// TestCircuitBreaker_OpensAfterThreshold tests that consecutive failures open the circuit.
func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{FailureThreshold: 3, SuccessThreshold: 1, Timeout: time.Minute, Name: "test"})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := cb.Execute(ctx, func() error { return errBoom })
		assert.ErrorIs(t, err, errBoom)
	}

	assert.True(t, cb.IsOpen())

	// While open, calls are rejected without executing.
	called := false
	err := cb.Execute(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

// TestCircuitBreaker_SuccessResetsFailures tests that a success clears the failure streak.
func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := New(Config{FailureThreshold: 2, SuccessThreshold: 1, Timeout: time.Minute, Name: "test"})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, func() error { return errBoom }))
	require.NoError(t, cb.Execute(ctx, func() error { return nil }))
	require.Error(t, cb.Execute(ctx, func() error { return errBoom }))

	// Streak was broken, so the circuit stays closed.
	assert.Equal(t, StateClosed, cb.State())
}

// TestCircuitBreaker_HalfOpenRecovery tests the open -> half-open -> closed path.
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 2, Timeout: 10 * time.Millisecond, Name: "test"})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, func() error { return errBoom }))
	require.True(t, cb.IsOpen())

	time.Sleep(20 * time.Millisecond)

	// First success transitions to half-open; second closes the circuit.
	require.NoError(t, cb.Execute(ctx, func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())
	require.NoError(t, cb.Execute(ctx, func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

// TestCircuitBreaker_HalfOpenFailureReopens tests that a half-open failure reopens.
func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 2, Timeout: 10 * time.Millisecond, Name: "test"})
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, func() error { return errBoom }))
	time.Sleep(20 * time.Millisecond)
	require.Error(t, cb.Execute(ctx, func() error { return errBoom }))

	assert.True(t, cb.IsOpen())
}

// TestCircuitBreaker_GetStats tests the statistics snapshot.
func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())
	ctx := context.Background()

	require.NoError(t, cb.Execute(ctx, func() error { return nil }))

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)
}
