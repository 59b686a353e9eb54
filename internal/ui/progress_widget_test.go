package ui

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/radial-progress/internal/clock"
	"github.com/ytget/radial-progress/internal/config"
	"github.com/ytget/radial-progress/internal/model"
)

func newTestProgress(t *testing.T) (*ProgressWidget, *clock.Manual) {
	t.Helper()
	test.NewApp()
	m := clock.NewManual(time.Unix(1000, 0))
	return NewProgressWidget(WithTimeSource(m, m)), m
}

func sameColor(a, b color.Color) bool {
	return color.NRGBAModel.Convert(a) == color.NRGBAModel.Convert(b)
}

func TestNewProgressWidget(t *testing.T) {
	w, _ := newTestProgress(t)

	if !strings.HasPrefix(w.ID(), WidgetIDPrefix) {
		t.Errorf("Expected ID with prefix %s, got %s", WidgetIDPrefix, w.ID())
	}
	if w.State() != model.StateIdle {
		t.Errorf("Expected Idle state, got %s", w.State())
	}
	if w.Fill() != 0 {
		t.Errorf("Expected empty fill, got %v", w.Fill())
	}
	if w.SliceSize() != config.DefaultSliceSize {
		t.Errorf("Expected slice size %v, got %v", config.DefaultSliceSize, w.SliceSize())
	}
	if !sameColor(w.EmptyColor(), DefaultEmptyColor) {
		t.Errorf("Expected default empty colour, got %v", w.EmptyColor())
	}
	if !sameColor(w.SliceColor(), DefaultSliceColor) {
		t.Errorf("Expected default slice colour, got %v", w.SliceColor())
	}

	other, _ := newTestProgress(t)
	if other.ID() == w.ID() {
		t.Error("Widget IDs should be unique")
	}
}

func TestProgressWidgetFill(t *testing.T) {
	w, m := newTestProgress(t)
	calls := 0
	w.SetCallback(func() { calls++ })

	w.SetFill(1, time.Second)
	if w.State() != model.StateAnimating {
		t.Errorf("Expected Animating state, got %s", w.State())
	}

	m.Advance(500 * time.Millisecond)
	if w.Fill() != 0.5 {
		t.Errorf("Expected fill 0.5 halfway, got %v", w.Fill())
	}
	if calls != 0 {
		t.Errorf("Callback should not fire before completion, fired %d times", calls)
	}

	m.Advance(500 * time.Millisecond)
	if w.Fill() != 1 {
		t.Errorf("Expected fill 1, got %v", w.Fill())
	}
	if w.State() != model.StateIdle {
		t.Errorf("Expected Idle state after completion, got %s", w.State())
	}
	if calls != 1 {
		t.Errorf("Expected exactly one completion, got %d", calls)
	}
}

func TestProgressWidgetFillInstant(t *testing.T) {
	w, _ := newTestProgress(t)
	calls := 0
	w.SetCallback(func() { calls++ })

	w.SetFillInstant(0.4)
	w.SetFillInstant(1)
	w.SetFillInstant(1)

	if w.Fill() != 1 {
		t.Errorf("Expected fill 1, got %v", w.Fill())
	}
	if calls != 2 {
		t.Errorf("Expected one completion per full instant fill, got %d", calls)
	}
}

func TestProgressWidgetCallbackReplaced(t *testing.T) {
	w, _ := newTestProgress(t)
	first, second := 0, 0
	w.SetCallback(func() { first++ })
	w.SetCallback(func() { second++ })

	w.SetFillInstant(1)

	if first != 0 || second != 1 {
		t.Errorf("Expected only the latest callback to fire, got first=%d second=%d", first, second)
	}
}

func TestProgressWidgetTappedTogglesPause(t *testing.T) {
	w, m := newTestProgress(t)

	// Idle: nothing to toggle
	w.Tapped(&fyne.PointEvent{})
	if w.State() != model.StateIdle {
		t.Errorf("Tap on an idle widget should do nothing, got %s", w.State())
	}

	w.SetFill(1, 4*time.Second)
	m.Advance(time.Second)

	w.Tapped(&fyne.PointEvent{})
	if w.State() != model.StatePaused {
		t.Fatalf("Expected Paused after tap, got %s", w.State())
	}
	m.Advance(10 * time.Second)
	if w.Fill() != 0.25 {
		t.Errorf("Fill should stay frozen while paused, got %v", w.Fill())
	}

	w.Tapped(&fyne.PointEvent{})
	if w.State() != model.StateAnimating {
		t.Fatalf("Expected Animating after second tap, got %s", w.State())
	}
	m.Advance(2 * time.Second)
	if w.Fill() != 0.75 {
		t.Errorf("Expected fill 0.75 after resuming, got %v", w.Fill())
	}
}

func TestProgressWidgetCancel(t *testing.T) {
	w, m := newTestProgress(t)
	calls := 0
	w.SetCallback(func() { calls++ })

	w.SetFill(1, time.Second)
	m.Advance(900 * time.Millisecond)
	w.Cancel(200 * time.Millisecond)
	if w.State() != model.StateCanceling {
		t.Errorf("Expected Canceling state, got %s", w.State())
	}

	m.Advance(100 * time.Millisecond)
	if calls != 0 {
		t.Errorf("Cancelled fill must not complete, got %d completions", calls)
	}

	m.Advance(100 * time.Millisecond)
	if w.Fill() != 0 {
		t.Errorf("Expected empty fill after cancel, got %v", w.Fill())
	}
	if w.State() != model.StateIdle {
		t.Errorf("Expected Idle state after cancel, got %s", w.State())
	}
	if !sameColor(w.StrokeColor(), w.SliceColor()) {
		t.Errorf("Expected slice colour restored, got %v", w.StrokeColor())
	}
}

func TestProgressWidgetReset(t *testing.T) {
	w, _ := newTestProgress(t)

	w.SetFill(1, time.Second)
	w.Reset()

	if w.Fill() != 0 || w.State() != model.StateIdle {
		t.Errorf("Expected empty idle widget after reset, got fill %v state %s", w.Fill(), w.State())
	}
}

func TestProgressWidgetOnChanged(t *testing.T) {
	w, m := newTestProgress(t)
	var lastFill float64
	var lastState model.AnimationState
	w.OnChanged = func(fill float64, state model.AnimationState) {
		lastFill = fill
		lastState = state
	}

	w.SetFillInstant(0.3)
	if lastFill != 0.3 || lastState != model.StateIdle {
		t.Errorf("Expected change (0.3, Idle), got (%v, %s)", lastFill, lastState)
	}

	w.SetFill(0.5, time.Second)
	if lastState != model.StateAnimating {
		t.Errorf("Expected Animating change, got %s", lastState)
	}

	m.Advance(time.Second)
	if lastFill != 0.5 || lastState != model.StateIdle {
		t.Errorf("Expected change (0.5, Idle), got (%v, %s)", lastFill, lastState)
	}
}

func TestProgressWidgetSetters(t *testing.T) {
	w, _ := newTestProgress(t)
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}

	w.SetEmptyColor(red)
	if !sameColor(w.EmptyColor(), red) {
		t.Errorf("Expected empty colour %v, got %v", red, w.EmptyColor())
	}
	w.SetEmptyColor(nil)
	if !sameColor(w.EmptyColor(), DefaultEmptyColor) {
		t.Errorf("nil empty colour should restore the default, got %v", w.EmptyColor())
	}

	w.SetSliceColor(green)
	if !sameColor(w.SliceColor(), green) || !sameColor(w.StrokeColor(), green) {
		t.Errorf("Expected slice colour %v, got %v / %v", green, w.SliceColor(), w.StrokeColor())
	}

	w.SetSliceSize(5)
	if w.SliceSize() != config.MaxSliceSize {
		t.Errorf("Expected slice size clamped to %v, got %v", config.MaxSliceSize, w.SliceSize())
	}
	w.SetSliceSize(0)
	if w.SliceSize() != config.MinSliceSize {
		t.Errorf("Expected slice size clamped to %v, got %v", config.MinSliceSize, w.SliceSize())
	}
}

func TestProgressRendererLayout(t *testing.T) {
	w, _ := newTestProgress(t)
	w.Resize(fyne.NewSize(200, 100))

	r := test.WidgetRenderer(w)
	r.Layout(w.Size())
	objects := r.Objects()
	if len(objects) != 2 {
		t.Fatalf("Expected disc and slice objects, got %d", len(objects))
	}

	for i, obj := range objects {
		if obj.Position() != fyne.NewPos(50, 0) {
			t.Errorf("Object %d: expected position (50,0), got %v", i, obj.Position())
		}
		if obj.Size() != fyne.NewSize(100, 100) {
			t.Errorf("Object %d: expected size 100x100, got %v", i, obj.Size())
		}
	}

	if g := w.Geometry(); g.StrokeWidth != 10 || g.ArcRadius != 45 {
		t.Errorf("Expected stroke 10 and arc radius 45, got %+v", g)
	}
	if minSize := r.MinSize(); minSize != fyne.NewSquareSize(MinDiameter) {
		t.Errorf("Expected min size %v, got %v", MinDiameter, minSize)
	}
}

func TestProgressRendererRefresh(t *testing.T) {
	w, _ := newTestProgress(t)
	w.Resize(fyne.NewSize(100, 100))
	r := test.WidgetRenderer(w)

	red := color.NRGBA{R: 255, A: 255}
	w.SetEmptyColor(red)
	r.Refresh()

	disc, ok := r.Objects()[0].(*canvas.Circle)
	if !ok {
		t.Fatalf("Expected first object to be the disc, got %T", r.Objects()[0])
	}
	if !sameColor(disc.FillColor, red) {
		t.Errorf("Expected disc colour %v, got %v", red, disc.FillColor)
	}
}

func TestProgressRendererDrawsFill(t *testing.T) {
	w, _ := newTestProgress(t)
	w.Resize(fyne.NewSize(100, 100))
	pr := test.WidgetRenderer(w).(*progressRenderer)

	assertAllTransparent(t, pr.generate(100, 100))

	w.SetFillInstant(1)
	img := pr.generate(100, 100)
	if a := alphaAt(img, 50, 95); a != 0xffff {
		t.Errorf("Expected opaque slice at the bottom of a full ring, alpha %d", a)
	}
}

func TestProgressWidgetSurvivesResize(t *testing.T) {
	w, m := newTestProgress(t)

	w.SetFill(1, 2*time.Second)
	m.Advance(time.Second)
	w.Resize(fyne.NewSize(300, 300))
	w.Resize(fyne.NewSize(50, 80))

	if w.State() != model.StateAnimating {
		t.Errorf("Resize should not interrupt the fill, got %s", w.State())
	}
	if w.Fill() != 0.5 {
		t.Errorf("Expected fill 0.5 after resize, got %v", w.Fill())
	}
}
