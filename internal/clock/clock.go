package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a pending deferred call.
type Timer interface {
	// Stop prevents the call from running. Returns false if the call already
	// ran or was stopped.
	Stop() bool
}

// Scheduler runs fn once after d has elapsed. Implementations must run fn on
// the same context the caller uses for UI work.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// System is the wall-clock Clock and Scheduler.
//
// Deferred calls fire on a runtime timer goroutine and are handed to
// dispatch, which must move them onto the main context (fyne.Do in the app).
// A nil dispatch calls fn directly on the timer goroutine.
type System struct {
	dispatch func(func())
}

// NewSystem creates a system clock that hands deferred calls to dispatch
func NewSystem(dispatch func(func())) *System {
	return &System{dispatch: dispatch}
}

// Now returns time.Now()
func (s *System) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on the runtime timer and dispatches it when due
func (s *System) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, func() {
		if s.dispatch == nil {
			fn()
			return
		}
		s.dispatch(fn)
	})
}
