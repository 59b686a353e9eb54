package ui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/radial-progress/internal/clock"
	"github.com/ytget/radial-progress/internal/config"
	"github.com/ytget/radial-progress/internal/model"
	"github.com/ytget/radial-progress/internal/slice"
)

// WidgetIDPrefix prefixes generated widget IDs
const WidgetIDPrefix = "radial_"

// Default appearance
var (
	DefaultEmptyColor color.Color = color.NRGBA{R: 199, G: 199, B: 199, A: 255}
	DefaultSliceColor             = slice.DefaultColor
)

// ProgressOption configures a ProgressWidget
type ProgressOption func(*progressOptions)

type progressOptions struct {
	clock     clock.Clock
	scheduler clock.Scheduler
	logger    *slog.Logger
}

// WithTimeSource replaces the wall clock and the fyne.Do based scheduler
func WithTimeSource(c clock.Clock, s clock.Scheduler) ProgressOption {
	return func(o *progressOptions) {
		o.clock = c
		o.scheduler = s
	}
}

// WithLogger sets the logger used for the widget and its animator
func WithLogger(l *slog.Logger) ProgressOption {
	return func(o *progressOptions) { o.logger = l }
}

func resolveOptions(opts []ProgressOption) progressOptions {
	o := progressOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil || o.scheduler == nil {
		sys := clock.NewSystem(fyne.Do)
		o.clock, o.scheduler = sys, sys
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// ProgressWidget is a circular progress indicator: a disc with an animated
// slice whose sweep shows the fill fraction.
type ProgressWidget struct {
	widget.BaseWidget

	// OnChanged is called after every redraw request with the displayed
	// fill and the animation state.
	OnChanged func(fill float64, state model.AnimationState)

	id     string
	logger *slog.Logger

	emptyColor color.Color
	sliceSize  float64

	animator *slice.Animator
	frames   *fyne.Animation

	// visual state pushed by the animator
	strokeEnd   float64
	strokeColor color.Color
}

// NewProgressWidget creates an empty, idle progress widget
func NewProgressWidget(opts ...ProgressOption) *ProgressWidget {
	o := resolveOptions(opts)

	w := &ProgressWidget{
		id:          generateWidgetID(),
		emptyColor:  DefaultEmptyColor,
		sliceSize:   config.DefaultSliceSize,
		strokeColor: DefaultSliceColor,
	}
	w.logger = o.logger.With("widget", w.id)
	w.animator = slice.NewAnimator(sliceSurface{w: w}, o.scheduler,
		slice.WithClock(o.clock),
		slice.WithLogger(w.logger),
		slice.WithColor(DefaultSliceColor),
	)
	w.ExtendBaseWidget(w)
	w.logger.Debug("progress widget created")
	return w
}

// ID returns the widget's unique identifier
func (w *ProgressWidget) ID() string {
	return w.id
}

// SetCallback sets the function called when the slice fills up to 100%.
// It replaces any previous callback.
func (w *ProgressWidget) SetCallback(fn func()) {
	w.animator.SetCallback(fn)
}

// EmptyColor returns the disc colour
func (w *ProgressWidget) EmptyColor() color.Color {
	return w.emptyColor
}

// SetEmptyColor changes the disc colour
func (w *ProgressWidget) SetEmptyColor(c color.Color) {
	if c == nil {
		c = DefaultEmptyColor
	}
	w.emptyColor = c
	w.Refresh()
}

// SliceColor returns the normal slice colour
func (w *ProgressWidget) SliceColor() color.Color {
	return w.animator.Color()
}

// SetSliceColor changes the slice colour
func (w *ProgressWidget) SetSliceColor(c color.Color) {
	w.animator.SetColor(c)
}

// SliceSize returns the slice thickness as a fraction of the radius
func (w *ProgressWidget) SliceSize() float64 {
	return w.sliceSize
}

// SetSliceSize changes the slice thickness (fraction of the radius)
func (w *ProgressWidget) SetSliceSize(size float64) {
	w.sliceSize = config.ClampSliceSize(size)
	w.Refresh()
}

// Geometry returns the current disc and slice layout
func (w *ProgressWidget) Geometry() Geometry {
	return ComputeGeometry(w.Size(), w.sliceSize)
}

// Fill returns the displayed fill fraction
func (w *ProgressWidget) Fill() float64 {
	return w.animator.Fill()
}

// StrokeColor returns the displayed slice colour, including any fade
func (w *ProgressWidget) StrokeColor() color.Color {
	return w.animator.StrokeColor()
}

// State returns the animation state
func (w *ProgressWidget) State() model.AnimationState {
	return w.animator.State()
}

// SetFill animates the slice to value over duration
func (w *ProgressWidget) SetFill(value float64, duration time.Duration) {
	w.animator.SetFill(value, duration)
	w.syncFrames()
}

// SetFillInstant shows value immediately
func (w *ProgressWidget) SetFillInstant(value float64) {
	w.animator.SetFillInstant(value)
	w.syncFrames()
}

// Pause freezes a running fill
func (w *ProgressWidget) Pause() {
	w.animator.Pause()
	w.syncFrames()
}

// Resume continues a paused fill
func (w *ProgressWidget) Resume() {
	w.animator.Resume()
	w.syncFrames()
}

// Cancel fades the slice out over fadeDuration, then empties it.
// A running fill keeps moving during the fade.
func (w *ProgressWidget) Cancel(fadeDuration time.Duration) {
	w.animator.Cancel(fadeDuration)
	w.syncFrames()
}

// Reset empties the slice immediately
func (w *ProgressWidget) Reset() {
	w.animator.Reset()
	w.syncFrames()
}

// Tapped toggles pause and resume
func (w *ProgressWidget) Tapped(*fyne.PointEvent) {
	switch w.animator.State() {
	case model.StateAnimating:
		w.Pause()
	case model.StatePaused:
		w.Resume()
	}
}

// CreateRenderer creates the widget renderer
func (w *ProgressWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &progressRenderer{
		progress: w,
		disc:     canvas.NewCircle(w.emptyColor),
	}
	r.slice = canvas.NewRaster(r.generate)
	r.objects = []fyne.CanvasObject{r.disc, r.slice}
	return r
}

// syncFrames keeps a repeating animation running while the animator has a
// moving timeline, so the slice is redrawn every frame.
func (w *ProgressWidget) syncFrames() {
	if !w.animator.Active() {
		w.stopFrames()
		return
	}
	if w.frames != nil {
		return
	}
	w.frames = fyne.NewAnimation(FrameLoopPeriod, func(float32) {
		w.animator.Frame()
		if !w.animator.Active() {
			w.stopFrames()
		}
	})
	w.frames.Curve = fyne.AnimationLinear
	w.frames.RepeatCount = fyne.AnimationRepeatForever
	w.frames.Start()
}

func (w *ProgressWidget) stopFrames() {
	if w.frames == nil {
		return
	}
	w.frames.Stop()
	w.frames = nil
}

// sliceSurface receives visual state from the animator
type sliceSurface struct {
	w *ProgressWidget
}

func (s sliceSurface) SetStrokeEnd(fill float64)    { s.w.strokeEnd = fill }
func (s sliceSurface) SetStrokeColor(c color.Color) { s.w.strokeColor = c }

func (s sliceSurface) Refresh() {
	s.w.Refresh()
	if s.w.OnChanged != nil {
		s.w.OnChanged(s.w.strokeEnd, s.w.animator.State())
	}
}

// progressRenderer renders the disc and the slice
type progressRenderer struct {
	progress *ProgressWidget
	disc     *canvas.Circle
	slice    *canvas.Raster
	objects  []fyne.CanvasObject
}

// Layout keeps the disc circular and centred within size
func (r *progressRenderer) Layout(size fyne.Size) {
	g := ComputeGeometry(size, r.progress.sliceSize)
	r.disc.Move(g.Origin)
	r.disc.Resize(g.SquareSize())
	r.slice.Move(g.Origin)
	r.slice.Resize(g.SquareSize())
}

// MinSize returns the minimum size
func (r *progressRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(MinDiameter)
}

// Refresh applies colours and geometry and redraws the slice
func (r *progressRenderer) Refresh() {
	r.disc.FillColor = r.progress.emptyColor
	r.Layout(r.progress.Size())
	r.disc.Refresh()
	r.slice.Refresh()
}

// Objects returns the disc and slice
func (r *progressRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy releases nothing; the frame loop is owned by the widget
func (r *progressRenderer) Destroy() {}

func (r *progressRenderer) generate(w, h int) image.Image {
	p := r.progress
	img, err := drawSlice(w, h, p.strokeEnd, p.strokeColor, p.sliceSize)
	if err != nil {
		p.logger.Warn("slice rasterization failed", "error", err)
	}
	return img
}

// generateWidgetID generates a unique widget ID using UUID v7 so IDs sort by creation time
func generateWidgetID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(WidgetIDPrefix+"%d", time.Now().UnixNano())
	}
	return WidgetIDPrefix + id.String()
}
