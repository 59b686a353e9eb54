package clock

import (
	"sort"
	"time"
)

// Manual is a Clock and Scheduler whose time only moves when Advance is
// called. Due calls run synchronously inside Advance, in due-time order and
// then scheduling order, with Now reporting each call's due time.
type Manual struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	m    *Manual
	due  time.Time
	seq  int
	fn   func()
	done bool
}

// NewManual creates a manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual time
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc registers fn to run once the manual time reaches now+d
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, running every call that becomes due
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		next.done = true
		m.remove(next)
		if next.due.After(m.now) {
			m.now = next.due
		}
		next.fn()
	}
	m.now = target
}

// AdvanceTo moves time forward to t. Earlier times are ignored.
func (m *Manual) AdvanceTo(t time.Time) {
	if t.Before(m.now) {
		return
	}
	m.Advance(t.Sub(m.now))
}

// Pending returns the number of calls still waiting to run
func (m *Manual) Pending() int {
	return len(m.timers)
}

func (m *Manual) nextDue(limit time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due.Equal(m.timers[j].due) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].due.Before(m.timers[j].due)
	})
	if m.timers[0].due.After(limit) {
		return nil
	}
	return m.timers[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Stop cancels the pending call
func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}
