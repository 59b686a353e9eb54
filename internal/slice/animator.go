package slice

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/ytget/radial-progress/internal/clock"
	"github.com/ytget/radial-progress/internal/model"
)

// DefaultColor is the stroke colour used when none is configured.
var DefaultColor color.Color = color.NRGBA{R: 0, G: 122, B: 255, A: 255}

// Surface receives the slice's visual state. Property changes only need to
// become visible after the next Refresh.
type Surface interface {
	// SetStrokeEnd applies the displayed fill fraction as the arc length.
	SetStrokeEnd(fill float64)
	// SetStrokeColor applies the stroke colour.
	SetStrokeColor(c color.Color)
	// Refresh requests a redraw.
	Refresh()
}

// Option configures an Animator.
type Option func(*Animator)

// WithClock sets the time source. Defaults to the scheduler when it is also
// a clock.Clock, otherwise to wall-clock time.
func WithClock(c clock.Clock) Option {
	return func(a *Animator) { a.clock = c }
}

// WithLogger enables debug logging of state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithColor sets the normal stroke colour.
func WithColor(c color.Color) Option {
	return func(a *Animator) {
		if c != nil {
			a.color = c
		}
	}
}

// WithCallback sets the completion callback.
func WithCallback(fn func()) Option {
	return func(a *Animator) { a.callback = fn }
}

// Animator drives the fill value and stroke colour of a progress slice.
type Animator struct {
	surface   Surface
	clock     clock.Clock
	scheduler clock.Scheduler
	logger    *slog.Logger

	color    color.Color
	callback func()

	// fill is the settled value, used while no value timeline runs.
	fill  float64
	value valueTimeline
	fade  fadeTimeline

	completion      clock.Timer
	completionToken uint64
	resetTimer      clock.Timer
	resetToken      uint64
	lastToken       uint64
}

// NewAnimator creates an idle, empty animator drawing to surface.
// surface may be nil. sched runs the deferred completion and reset calls and
// must run them on the context that calls the animator; it panics if sched
// is nil.
func NewAnimator(surface Surface, sched clock.Scheduler, opts ...Option) *Animator {
	if sched == nil {
		panic("slice: NewAnimator requires a scheduler")
	}
	a := &Animator{
		surface:   surface,
		scheduler: sched,
		logger:    slog.New(slog.DiscardHandler),
		color:     DefaultColor,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.clock == nil {
		if c, ok := sched.(clock.Clock); ok {
			a.clock = c
		} else {
			a.clock = clock.NewSystem(nil)
		}
	}
	return a
}

// SetCallback replaces the completion callback. nil removes it.
func (a *Animator) SetCallback(fn func()) {
	a.callback = fn
}

// SetSurface replaces the rendering surface and pushes the current state to it.
func (a *Animator) SetSurface(s Surface) {
	a.surface = s
	a.Frame()
}

// Color returns the normal (unfaded) stroke colour.
func (a *Animator) Color() color.Color {
	return a.color
}

// SetColor changes the normal stroke colour. A running fade keeps fading
// from the colour it started with; the new colour is restored after it.
func (a *Animator) SetColor(c color.Color) {
	if c == nil {
		c = DefaultColor
	}
	a.color = c
	a.Frame()
}

// Fill returns the currently displayed fill value.
func (a *Animator) Fill() float64 {
	if a.value.running {
		return a.value.valueAt(a.clock.Now())
	}
	return a.fill
}

// StrokeColor returns the currently displayed stroke colour.
func (a *Animator) StrokeColor() color.Color {
	if a.fade.running {
		return a.fade.colorAt(a.clock.Now())
	}
	return a.color
}

// State reports the current animation state. A fade in progress wins over a
// concurrently running or paused fill.
func (a *Animator) State() model.AnimationState {
	switch {
	case a.fade.running:
		return model.StateCanceling
	case a.value.running && a.value.paused:
		return model.StatePaused
	case a.value.running:
		return model.StateAnimating
	default:
		return model.StateIdle
	}
}

// Active reports whether a timeline is moving and the surface needs frames.
func (a *Animator) Active() bool {
	return a.State().IsActive()
}

// Frame pushes the current fill and colour to the surface and requests a redraw.
func (a *Animator) Frame() {
	if a.surface == nil {
		return
	}
	a.surface.SetStrokeEnd(a.Fill())
	a.surface.SetStrokeColor(a.StrokeColor())
	a.surface.Refresh()
}

// SetFill animates from the displayed value to target over duration. A
// non-positive duration applies target immediately, like SetFillInstant.
func (a *Animator) SetFill(target float64, duration time.Duration) {
	target = model.ClampFill(target)
	if duration <= 0 {
		a.SetFillInstant(target)
		return
	}

	now := a.clock.Now()
	from := a.Fill()
	a.stopCompletion()
	a.value = valueTimeline{
		from:               from,
		to:                 target,
		start:              now,
		duration:           duration,
		running:            true,
		awaitingCompletion: true,
	}
	a.armCompletion(duration)
	a.logger.Debug("slice fill started", "from", from, "to", target, "duration", duration)
	a.Frame()
}

// SetFillInstant stops any running fill and shows target immediately, then
// runs the completion protocol.
func (a *Animator) SetFillInstant(target float64) {
	target = model.ClampFill(target)
	a.stopCompletion()
	a.value = valueTimeline{}
	a.fill = target
	a.logger.Debug("slice fill set", "value", target)
	a.Frame()
	a.complete()
}

// Pause freezes a running fill. No-op when nothing runs or already paused.
func (a *Animator) Pause() {
	if !a.value.running || a.value.paused {
		return
	}
	now := a.clock.Now()
	a.value.elapsedAtPause = a.value.elapsed(now)
	a.value.pausedAt = now
	a.value.paused = true
	a.stopCompletion()
	a.logger.Debug("slice fill paused", "elapsed", a.value.elapsedAtPause)
	a.Frame()
}

// Resume continues a paused fill from the exact progress it was paused at.
// No-op when not paused.
func (a *Animator) Resume() {
	if !a.value.running || !a.value.paused {
		return
	}
	now := a.clock.Now()
	a.value.start = now.Add(-a.value.elapsedAtPause)
	a.value.paused = false
	if a.value.awaitingCompletion {
		a.armCompletion(a.value.remaining(now))
	}
	a.logger.Debug("slice fill resumed", "paused_for", now.Sub(a.value.pausedAt))
	a.Frame()
}

// Cancel fades the slice out over fadeDuration and then resets it to empty
// with its normal colour. A running fill keeps interpolating during the fade
// but will not run the completion protocol. A non-positive fadeDuration
// resets immediately.
func (a *Animator) Cancel(fadeDuration time.Duration) {
	a.stopCompletion()
	a.value.awaitingCompletion = false
	a.stopReset()

	if fadeDuration <= 0 {
		a.reset()
		return
	}

	now := a.clock.Now()
	a.fade = fadeTimeline{
		from:     a.StrokeColor(),
		start:    now,
		duration: fadeDuration,
		running:  true,
	}
	token := a.nextToken()
	a.resetToken = token
	a.resetTimer = a.scheduler.AfterFunc(fadeDuration, func() {
		if token != a.resetToken {
			return
		}
		a.resetTimer = nil
		a.reset()
	})
	a.logger.Debug("slice cancel started", "fade", fadeDuration)
	a.Frame()
}

// Reset immediately empties the slice. Same as Cancel(0).
func (a *Animator) Reset() {
	a.Cancel(0)
}

func (a *Animator) reset() {
	a.stopCompletion()
	a.stopReset()
	a.value = valueTimeline{}
	a.fade = fadeTimeline{}
	a.fill = model.MinFill
	a.logger.Debug("slice reset")
	a.Frame()
}

func (a *Animator) armCompletion(after time.Duration) {
	token := a.nextToken()
	a.completionToken = token
	a.completion = a.scheduler.AfterFunc(after, func() {
		if token != a.completionToken {
			return
		}
		a.completion = nil
		a.completionToken = 0
		a.fill = a.value.to
		a.value = valueTimeline{}
		a.logger.Debug("slice fill finished", "value", a.fill)
		a.Frame()
		a.complete()
	})
}

func (a *Animator) stopCompletion() {
	if a.completion != nil {
		a.completion.Stop()
		a.completion = nil
	}
	a.completionToken = 0
}

func (a *Animator) stopReset() {
	if a.resetTimer != nil {
		a.resetTimer.Stop()
		a.resetTimer = nil
	}
	a.resetToken = 0
}

func (a *Animator) nextToken() uint64 {
	a.lastToken++
	return a.lastToken
}

// complete runs the completion protocol for the value just applied.
func (a *Animator) complete() {
	if !model.IsFull(a.fill) {
		return
	}
	if cb := a.callback; cb != nil {
		a.logger.Debug("slice completion")
		cb()
	}
}
