package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/internal/models"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrChannelFull = errors.New("channel is full")
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SendMessageEvent - UI requests core to send a message
type SendMessageEvent struct {
	Message string
}

func (e SendMessageEvent) UIEvent() {}

// UpdateConfigEvent - UI hands the core a committed chat configuration
type UpdateConfigEvent struct {
	Config chatconfig.Configuration
}

func (e UpdateConfigEvent) UIEvent() {}

// StateUpdateEvent - Core pushes state changes to UI
type StateUpdateEvent struct {
	Messages     []models.Message
	IsProcessing bool
	Error        error
	Model        string
}

func (e StateUpdateEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// CircuitBreaker stops sends after maxFailures consecutive failures until
// resetTimeout has passed. Both the UI and the core goroutine use it.
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen && cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
		cb.state = CircuitHalfOpen
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
	closeOnce      sync.Once
}

func NewEventBus() *EventBus {
	return NewEventBusWithSize(100)
}

func NewEventBusWithSize(size int) *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, size),
		coreToUI:       make(chan CoreEvent, size),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

// SetErrorCallback must be called before the bus is shared between goroutines.
func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	eb.circuitBreaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("SendToCore", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		eb.reportError("SendToCore", ErrChannelFull)
		return ErrChannelFull
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	if eb.circuitBreaker.IsOpen() {
		eb.reportError("SendToUI", ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		eb.reportError("SendToUI", ErrChannelFull)
		return ErrChannelFull
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.uiToCore)
		close(eb.coreToUI)
	})
}
