package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/portfolio/internal/platform/config"
)

// State is a circuit breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker stops calls to a failing destination.
//
//	closed    -> open       after MaxFailures consecutive failures
//	open      -> half-open  once Timeout has passed since the last failure
//	half-open -> closed     after HalfOpenLimit consecutive successes
//	half-open -> open       on any failure
type CircuitBreaker struct {
	cfg config.CircuitBreakerConfig

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	probes    int
	lastFail  time.Time
	listener  func(from, to State)

	now func() time.Time
}

func NewCircuitBreaker(cfg config.CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition. fn runs outside
// the breaker's lock and may call State.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	cb.listener = fn
	cb.mu.Unlock()
}

// Allow reports whether a call may proceed. In half-open state at most
// HalfOpenLimit probes are in flight at once.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	var (
		allowed bool
		notify  func()
	)

	switch cb.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if cb.now().Sub(cb.lastFail) >= cb.cfg.Timeout {
			notify = cb.transition(StateHalfOpen)
			cb.probes = 1
			allowed = true
		}
	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenLimit {
			cb.probes++
			allowed = true
		}
	}

	cb.mu.Unlock()
	run(notify)

	return allowed
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()

	var notify func()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probes--
		cb.successes++

		if cb.successes >= cb.cfg.HalfOpenLimit {
			notify = cb.transition(StateClosed)
		}
	}

	cb.mu.Unlock()
	run(notify)
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()

	var notify func()

	cb.lastFail = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			notify = cb.transition(StateOpen)
		}
	case StateHalfOpen:
		cb.probes--
		notify = cb.transition(StateOpen)
	}

	cb.mu.Unlock()
	run(notify)
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// transition must be called with mu held. It returns the listener call to
// make once the lock is released.
func (cb *CircuitBreaker) transition(to State) func() {
	from := cb.state
	if from == to {
		return nil
	}

	cb.state = to
	cb.failures = 0
	cb.successes = 0

	if to != StateHalfOpen {
		cb.probes = 0
	}

	if fn := cb.listener; fn != nil {
		return func() { fn(from, to) }
	}

	return nil
}

func run(fn func()) {
	if fn != nil {
		fn()
	}
}
