package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/chatconfig"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	cfg := chatconfig.Default()
	require.NoError(t, eb.SendToCore(UpdateConfigEvent{Config: cfg}))
	require.NoError(t, eb.SendToUI(StateUpdateEvent{Model: cfg.Model}))

	assert.Equal(t, UpdateConfigEvent{Config: cfg}, <-eb.UIToCore())
	assert.Equal(t, StateUpdateEvent{Model: cfg.Model}, <-eb.CoreToUI())
}

func TestEventBus_FullChannelOpensBreaker(t *testing.T) {
	eb := NewEventBusWithSize(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(err EventBusError) { reported = append(reported, err) })

	require.NoError(t, eb.SendToCore(SendMessageEvent{Message: "a"}))
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, eb.SendToCore(SendMessageEvent{Message: "b"}), ErrChannelFull)
	}

	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrCircuitOpen)
	require.Len(t, reported, 6)
	assert.ErrorIs(t, reported[5], ErrCircuitOpen)
	assert.Equal(t, "SendToUI: circuit breaker is open", reported[5].Error())
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	now := time.Unix(0, 0)
	cb := NewCircuitBreaker(2, time.Second)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(2 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())
	assert.Equal(t, "half-open", cb.State().String())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestEventBus_CloseTwice(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	assert.NotPanics(t, eb.Close)
}
