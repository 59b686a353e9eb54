// Package slice implements the animation state machine behind the radial
// progress slice.
//
// An [Animator] owns two independent timelines:
//
//   - the value timeline, which linearly interpolates the fill fraction from
//     the currently displayed value to a target over a duration, and can be
//     paused and resumed exactly;
//   - the fade timeline, started by [Animator.Cancel], which fades the stroke
//     colour to transparent and then resets the slice to empty.
//
// The two overlap on purpose: cancelling withdraws the pending completion but
// lets a running fill keep moving while the slice fades.
//
// The completion callback fires only when a fill change finishes with the
// value at exactly 1.0, either when a timed fill completes naturally or right
// after [Animator.SetFillInstant]. Superseded timed fills never fire.
//
// All methods must be called from the UI main context. Deferred work is
// scheduled through a [clock.Scheduler] that runs on that same context.
package slice
