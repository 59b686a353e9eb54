package slice

import (
	"image/color"
	"time"
)

// valueTimeline interpolates the fill value.
type valueTimeline struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration

	running bool
	// awaitingCompletion is cleared by Cancel: the value keeps moving but the
	// completion protocol no longer runs for it.
	awaitingCompletion bool

	paused         bool
	pausedAt       time.Time
	elapsedAtPause time.Duration
}

func (v *valueTimeline) elapsed(now time.Time) time.Duration {
	if v.paused {
		return v.elapsedAtPause
	}
	return now.Sub(v.start)
}

func (v *valueTimeline) remaining(now time.Time) time.Duration {
	left := v.duration - v.elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

func (v *valueTimeline) valueAt(now time.Time) float64 {
	return v.from + (v.to-v.from)*progress(v.elapsed(now), v.duration)
}

// fadeTimeline fades the stroke colour to transparent.
type fadeTimeline struct {
	from     color.Color
	start    time.Time
	duration time.Duration
	running  bool
}

func (f *fadeTimeline) colorAt(now time.Time) color.Color {
	return fadeOut(f.from, progress(now.Sub(f.start), f.duration))
}

// progress returns elapsed/duration clamped to [0, 1].
func progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// fadeOut scales the alpha of c by (1 - t), keeping its hue.
func fadeOut(c color.Color, t float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*(1-t) + 0.5)
	return n
}
