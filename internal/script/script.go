package script

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ytget/radial-progress/internal/clock"
	"github.com/ytget/radial-progress/internal/model"
)

// Action names a progress operation
type Action string

const (
	ActionFill    Action = "fill"
	ActionInstant Action = "instant"
	ActionPause   Action = "pause"
	ActionResume  Action = "resume"
	ActionCancel  Action = "cancel"
	ActionReset   Action = "reset"
)

// ErrUnknownAction is returned for steps whose action is not recognised
var ErrUnknownAction = errors.New("unknown action")

// ParseAction parses an action name, case-insensitively
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	switch a {
	case ActionFill, ActionInstant, ActionPause, ActionResume, ActionCancel, ActionReset:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Target receives scripted operations. ui.ProgressWidget and slice.Animator
// both satisfy it.
type Target interface {
	SetFill(value float64, duration time.Duration)
	SetFillInstant(value float64)
	Pause()
	Resume()
	Cancel(fadeDuration time.Duration)
	Reset()
}

// Step is one scheduled operation
type Step struct {
	At       time.Duration // offset from the start of the run
	Action   Action
	Value    float64       // fill target for fill / instant
	Duration time.Duration // animation length for fill, fade length for cancel
}

// String returns a short human-readable description of the step
func (s Step) String() string {
	switch s.Action {
	case ActionFill:
		return fmt.Sprintf("%v %s %d%% over %v", s.At, s.Action, model.Percent(s.Value), s.Duration)
	case ActionInstant:
		return fmt.Sprintf("%v %s %d%%", s.At, s.Action, model.Percent(s.Value))
	case ActionCancel:
		return fmt.Sprintf("%v %s fade %v", s.At, s.Action, s.Duration)
	default:
		return fmt.Sprintf("%v %s", s.At, s.Action)
	}
}

// Apply performs the step on target
func (s Step) Apply(target Target) {
	switch s.Action {
	case ActionFill:
		target.SetFill(s.Value, s.Duration)
	case ActionInstant:
		target.SetFillInstant(s.Value)
	case ActionPause:
		target.Pause()
	case ActionResume:
		target.Resume()
	case ActionCancel:
		target.Cancel(s.Duration)
	case ActionReset:
		target.Reset()
	}
}

// Script is an ordered list of steps
type Script struct {
	Name  string
	Steps []Step
}

// Validate checks actions and offsets and sorts steps by offset. Steps with
// equal offsets keep their file order.
func (sc *Script) Validate() error {
	for i, step := range sc.Steps {
		if _, err := ParseAction(string(step.Action)); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if step.At < 0 {
			return fmt.Errorf("step %d: negative offset %v", i, step.At)
		}
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool {
		return sc.Steps[i].At < sc.Steps[j].At
	})
	return nil
}

// Length returns the offset of the last step
func (sc *Script) Length() time.Duration {
	var last time.Duration
	for _, step := range sc.Steps {
		if step.At > last {
			last = step.At
		}
	}
	return last
}

// Run schedules every step on sched relative to now. Steps at offset zero
// run before Run returns. onStep, if not nil, is called after each step.
// The returned function stops steps that have not run yet.
func (sc *Script) Run(sched clock.Scheduler, target Target, onStep func(Step)) (stop func()) {
	timers := make([]clock.Timer, 0, len(sc.Steps))
	stopped := false

	for _, step := range sc.Steps {
		step := step
		run := func() {
			if stopped {
				return
			}
			step.Apply(target)
			if onStep != nil {
				onStep(step)
			}
		}
		if step.At <= 0 {
			run()
			continue
		}
		timers = append(timers, sched.AfterFunc(step.At, run))
	}

	return func() {
		stopped = true
		for _, t := range timers {
			t.Stop()
		}
	}
}

// Default returns the built-in demonstration: a slow fill interrupted by
// instant jumps, a cancel, a refill that is paused and resumed, a reset and
// a final instant fill.
func Default() *Script {
	return &Script{
		Name: "demo",
		Steps: []Step{
			{At: 0, Action: ActionFill, Value: 1.0, Duration: 5 * time.Second},
			{At: 2 * time.Second, Action: ActionInstant, Value: 0.9},
			{At: 2200 * time.Millisecond, Action: ActionInstant, Value: 0.2},
			{At: 3 * time.Second, Action: ActionCancel, Duration: 200 * time.Millisecond},
			{At: 3300 * time.Millisecond, Action: ActionFill, Value: 1.0, Duration: 5 * time.Second},
			{At: 5 * time.Second, Action: ActionPause},
			{At: 6 * time.Second, Action: ActionResume},
			{At: 9 * time.Second, Action: ActionReset},
			{At: 10 * time.Second, Action: ActionInstant, Value: 0.2},
		},
	}
}
