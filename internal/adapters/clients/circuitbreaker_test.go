package clients

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/portfolio/internal/platform/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newBreaker(maxFailures, halfOpen int) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(config.CircuitBreakerConfig{
		MaxFailures:   maxFailures,
		Timeout:       30 * time.Second,
		HalfOpenLimit: halfOpen,
	})
	cb.now = clock.now

	return cb, clock
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb, _ := newBreaker(3, 1)

	assert.True(t, cb.Allow())

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State(), "success resets the failure count")

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb, clock := newBreaker(1, 2)

	cb.RecordFailure()
	clock.advance(29 * time.Second)
	assert.False(t, cb.Allow())

	clock.advance(time.Second)
	assert.True(t, cb.Allow())
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.True(t, cb.Allow(), "second probe fits the limit")
	assert.False(t, cb.Allow(), "third probe exceeds the limit")

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.State())
	assert.True(t, cb.Allow())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock := newBreaker(1, 2)

	cb.RecordFailure()
	clock.advance(time.Minute)
	assert.True(t, cb.Allow())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	cb, clock := newBreaker(1, 1)

	var transitions []string

	cb.OnStateChange(func(from, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
		_ = cb.State()
	})

	cb.RecordFailure()
	clock.advance(time.Minute)
	cb.Allow()
	cb.RecordSuccess()

	assert.Equal(t, []string{"closed->open", "open->half-open", "half-open->closed"}, transitions)
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb, _ := newBreaker(1000, 1)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Go(func() {
			if cb.Allow() {
				if i%2 == 0 {
					cb.RecordFailure()
				} else {
					cb.RecordSuccess()
				}
			}
		})
	}

	wg.Wait()
	assert.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
