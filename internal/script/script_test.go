package script

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ytget/radial-progress/internal/clock"
	"github.com/ytget/radial-progress/internal/model"
	"github.com/ytget/radial-progress/internal/slice"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// recordingTarget logs every call it receives with the time it arrived.
type recordingTarget struct {
	clock *clock.Manual
	calls []string
	at    []time.Duration
}

func (r *recordingTarget) record(name string) {
	r.calls = append(r.calls, name)
	r.at = append(r.at, r.clock.Now().Sub(epoch))
}

func (r *recordingTarget) SetFill(float64, time.Duration) { r.record("fill") }
func (r *recordingTarget) SetFillInstant(float64)         { r.record("instant") }
func (r *recordingTarget) Pause()                         { r.record("pause") }
func (r *recordingTarget) Resume()                        { r.record("resume") }
func (r *recordingTarget) Cancel(time.Duration)           { r.record("cancel") }
func (r *recordingTarget) Reset()                         { r.record("reset") }

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		expected Action
	}{
		{"fill", ActionFill},
		{"INSTANT", ActionInstant},
		{" pause ", ActionPause},
		{"resume", ActionResume},
		{"cancel", ActionCancel},
		{"Reset", ActionReset},
	}

	for _, test := range tests {
		a, err := ParseAction(test.name)
		if err != nil {
			t.Errorf("ParseAction(%q) returned error: %v", test.name, err)
			continue
		}
		if a != test.expected {
			t.Errorf("ParseAction(%q) = %s, expected %s", test.name, a, test.expected)
		}
	}

	if _, err := ParseAction("explode"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	sc := Default()

	if err := sc.Validate(); err != nil {
		t.Fatalf("Default script should validate: %v", err)
	}
	if len(sc.Steps) != 9 {
		t.Errorf("Expected 9 steps, got %d", len(sc.Steps))
	}
	if sc.Length() != 10*time.Second {
		t.Errorf("Expected length 10s, got %v", sc.Length())
	}
}

func TestRun_SchedulesStepsAtOffsets(t *testing.T) {
	m := clock.NewManual(epoch)
	target := &recordingTarget{clock: m}

	var reported []Action
	Default().Run(m, target, func(s Step) { reported = append(reported, s.Action) })

	if len(target.calls) != 1 || target.calls[0] != "fill" {
		t.Fatalf("Zero-offset step should run immediately, got %v", target.calls)
	}

	m.Advance(11 * time.Second)

	expected := []string{"fill", "instant", "instant", "cancel", "fill", "pause", "resume", "reset", "instant"}
	expectedAt := []time.Duration{
		0, 2 * time.Second, 2200 * time.Millisecond, 3 * time.Second, 3300 * time.Millisecond,
		5 * time.Second, 6 * time.Second, 9 * time.Second, 10 * time.Second,
	}
	if len(target.calls) != len(expected) {
		t.Fatalf("Expected %d calls, got %d (%v)", len(expected), len(target.calls), target.calls)
	}
	for i := range expected {
		if target.calls[i] != expected[i] {
			t.Errorf("Call %d: expected %s, got %s", i, expected[i], target.calls[i])
		}
		if target.at[i] != expectedAt[i] {
			t.Errorf("Call %d (%s): expected at %v, got %v", i, expected[i], expectedAt[i], target.at[i])
		}
	}
	if len(reported) != len(expected) {
		t.Errorf("onStep should be called for every step, got %d", len(reported))
	}
}

func TestRun_Stop(t *testing.T) {
	m := clock.NewManual(epoch)
	target := &recordingTarget{clock: m}

	stop := Default().Run(m, target, nil)
	m.Advance(2500 * time.Millisecond)
	stop()
	m.Advance(time.Minute)

	if len(target.calls) != 3 {
		t.Errorf("Expected 3 calls before stop, got %d (%v)", len(target.calls), target.calls)
	}
	if m.Pending() != 0 {
		t.Errorf("Stop should cancel pending steps, %d left", m.Pending())
	}
}

func TestRun_DefaultAgainstAnimator(t *testing.T) {
	m := clock.NewManual(epoch)
	completions := 0
	a := slice.NewAnimator(nil, m,
		slice.WithCallback(func() { completions++ }),
	)

	Default().Run(m, a, nil)

	m.Advance(2100 * time.Millisecond)
	if a.Fill() != 0.9 {
		t.Errorf("At 2.1s expected 0.9, got %v", a.Fill())
	}

	m.Advance(1000 * time.Millisecond)
	if a.State() != model.StateCanceling {
		t.Errorf("At 3.1s expected Canceling, got %s", a.State())
	}

	m.Advance(2400 * time.Millisecond)
	if a.State() != model.StatePaused {
		t.Errorf("At 5.5s expected Paused, got %s", a.State())
	}
	if got := a.Fill(); math.Abs(got-0.34) > 1e-9 {
		t.Errorf("At 5.5s expected paused fill 0.34, got %v", got)
	}

	m.Advance(3000 * time.Millisecond)
	if got := a.Fill(); math.Abs(got-0.84) > 1e-9 {
		t.Errorf("At 8.5s expected 0.84, got %v", got)
	}

	m.Advance(2 * time.Second)
	if a.Fill() != 0.2 || a.State() != model.StateIdle {
		t.Errorf("At 10.5s expected idle 0.2, got %v %s", a.Fill(), a.State())
	}
	if completions != 0 {
		t.Errorf("Demo never completes a fill, got %d completions", completions)
	}
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		step     Step
		expected string
	}{
		{Step{At: time.Second, Action: ActionFill, Value: 1, Duration: 5 * time.Second}, "1s fill 100% over 5s"},
		{Step{At: 2 * time.Second, Action: ActionInstant, Value: 0.9}, "2s instant 90%"},
		{Step{At: 3 * time.Second, Action: ActionCancel, Duration: 200 * time.Millisecond}, "3s cancel fade 200ms"},
		{Step{At: 0, Action: ActionReset}, "0s reset"},
	}

	for _, test := range tests {
		if got := test.step.String(); got != test.expected {
			t.Errorf("Step.String() = %q, expected %q", got, test.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	sc := &Script{Steps: []Step{
		{At: 3 * time.Second, Action: ActionReset},
		{At: time.Second, Action: ActionPause},
		{At: time.Second, Action: ActionResume},
	}}
	if err := sc.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	order := []Action{ActionPause, ActionResume, ActionReset}
	for i, a := range order {
		if sc.Steps[i].Action != a {
			t.Errorf("Step %d: expected %s, got %s", i, a, sc.Steps[i].Action)
		}
	}

	bad := &Script{Steps: []Step{{At: -time.Second, Action: ActionReset}}}
	if err := bad.Validate(); err == nil {
		t.Error("Negative offset should fail validation")
	}

	unknown := &Script{Steps: []Step{{Action: "spin"}}}
	if err := unknown.Validate(); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}
