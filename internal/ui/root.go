package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/radial-progress/internal/clock"
	"github.com/ytget/radial-progress/internal/config"
	"github.com/ytget/radial-progress/internal/model"
	"github.com/ytget/radial-progress/internal/script"
)

// Manual control values
const (
	ManualFillTarget    = 1.0
	ManualInstantTarget = 0.9
)

// RootUI is the demo window: one progress widget plus controls
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	scheduler    clock.Scheduler

	progress    *ProgressWidget
	statusLabel *widget.Label
	stepLabel   *widget.Label

	runBtn      *widget.Button
	fillBtn     *widget.Button
	instantBtn  *widget.Button
	pauseBtn    *widget.Button
	resumeBtn   *widget.Button
	cancelBtn   *widget.Button
	resetBtn    *widget.Button
	settingsBtn *widget.Button

	completions int
	stopScript  func()
	statusText  string
}

// NewRootUI creates and initializes the demo UI. opts are passed to the
// progress widget; its scheduler also drives demo scripts.
func NewRootUI(window fyne.Window, app fyne.App, opts ...ProgressOption) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	o := resolveOptions(opts)

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		scheduler:    o.scheduler,
		progress: NewProgressWidget(
			WithTimeSource(o.clock, o.scheduler),
			WithLogger(o.logger),
		),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.progress.SetCallback(ui.onCompleted)
	ui.progress.OnChanged = ui.onProgressChanged
	ui.ApplySettings()

	ui.setupUI()
	log.Printf("RootUI initialized with widget %s, language %s", ui.progress.ID(), localization.GetCurrentLanguage())
	return ui
}

// Progress returns the hosted progress widget
func (ui *RootUI) Progress() *ProgressWidget {
	return ui.progress
}

// Completions returns how many times the widget reported a full slice
func (ui *RootUI) Completions() int {
	return ui.completions
}

// StatusText returns the text of the status line
func (ui *RootUI) StatusText() string {
	return ui.statusText
}

func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.stepLabel = widget.NewLabel(DashPlaceholder)
	ui.stepLabel.Alignment = fyne.TextAlignCenter
	ui.stepLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusText = ""
	ui.onProgressChanged(ui.progress.Fill(), ui.progress.State())

	ui.runBtn = widget.NewButton(IconPlay+" "+t(KeyRunDemo), ui.RunDemo)
	ui.runBtn.Importance = widget.HighImportance
	ui.fillBtn = widget.NewButton(t(KeyFill), ui.onFill)
	ui.instantBtn = widget.NewButton(t(KeyFillInstant), ui.onFillInstant)
	ui.pauseBtn = widget.NewButton(IconPause+" "+t(KeyPause), ui.onPause)
	ui.resumeBtn = widget.NewButton(IconPlay+" "+t(KeyResume), ui.onResume)
	ui.cancelBtn = widget.NewButton(IconStop+" "+t(KeyCancel), ui.onCancel)
	ui.resetBtn = widget.NewButton(IconReset+" "+t(KeyReset), ui.onReset)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	controls := ui.adaptiveGrid(4,
		ui.fillBtn, ui.instantBtn, ui.pauseBtn, ui.resumeBtn,
		ui.cancelBtn, ui.resetBtn,
	)
	top := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.runBtn)
	bottom := container.NewVBox(ui.statusLabel, ui.stepLabel, controls)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewPadded(ui.progress)))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// adaptiveGrid narrows the grid to two columns on phones
func (ui *RootUI) adaptiveGrid(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	if fyne.CurrentDevice().IsMobile() {
		columns = 2
	}
	return container.NewAdaptiveGrid(columns, objects...)
}

// ApplySettings pushes stored appearance settings to the widget
func (ui *RootUI) ApplySettings() {
	ui.progress.SetEmptyColor(ui.settings.GetEmptyColor())
	ui.progress.SetSliceColor(ui.settings.GetSliceColor())
	ui.progress.SetSliceSize(ui.settings.GetSliceSize())
}

// RunDemo stops any running script, resets the widget and starts the
// configured demo script from the beginning.
func (ui *RootUI) RunDemo() {
	ui.stopDemo()
	ui.progress.Reset()

	sc := ui.loadScript()
	log.Printf("Running demo script %q (%d steps, %s)", sc.Name, len(sc.Steps), sc.Length())
	ui.stopScript = sc.Run(ui.scheduler, ui.progress, ui.onStep)
}

// loadScript returns the configured script, or the built-in one when none is
// configured or it cannot be loaded.
func (ui *RootUI) loadScript() *script.Script {
	path := ui.settings.GetDemoScript()
	if path == "" {
		return script.Default()
	}

	sc, err := script.Load(path)
	if err != nil {
		log.Printf("Failed to load demo script %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyScriptLoadFailed), err), ui.window)
		return script.Default()
	}
	return sc
}

func (ui *RootUI) stopDemo() {
	if ui.stopScript != nil {
		ui.stopScript()
		ui.stopScript = nil
	}
}

func (ui *RootUI) onStep(step script.Step) {
	ui.setStepText(step.String())
}

func (ui *RootUI) onFill() {
	ui.stopDemo()
	ui.progress.SetFill(ManualFillTarget, ManualFillDuration)
}

func (ui *RootUI) onFillInstant() {
	ui.stopDemo()
	ui.progress.SetFillInstant(ManualInstantTarget)
}

func (ui *RootUI) onPause() {
	ui.progress.Pause()
}

func (ui *RootUI) onResume() {
	ui.progress.Resume()
}

func (ui *RootUI) onCancel() {
	ui.stopDemo()
	ui.progress.Cancel(ui.settings.GetFadeDuration())
}

func (ui *RootUI) onReset() {
	ui.stopDemo()
	ui.progress.Reset()
}

func (ui *RootUI) onCompleted() {
	ui.completions++
	log.Printf("Progress %s completed (%d)", ui.progress.ID(), ui.completions)
	ui.setStepText(fmt.Sprintf("%s %s (%d)", IconDone, ui.localization.GetText(KeyCompleted), ui.completions))
}

// onProgressChanged runs on every redraw, so the label is only touched when
// its text changes.
func (ui *RootUI) onProgressChanged(fill float64, state model.AnimationState) {
	text := fmt.Sprintf(ProgressLabelFormat, model.Percent(fill)) + MiddleDotSeparator + ui.stateText(state)
	if text == ui.statusText {
		return
	}
	ui.statusText = text
	if ui.statusLabel != nil {
		ui.statusLabel.SetText(text)
	}
}

func (ui *RootUI) setStepText(text string) {
	if ui.stepLabel != nil {
		ui.stepLabel.SetText(text)
	}
}

func (ui *RootUI) stateText(state model.AnimationState) string {
	switch state {
	case model.StateAnimating:
		return ui.localization.GetText(KeyStateAnimating)
	case model.StatePaused:
		return ui.localization.GetText(KeyStatePaused)
	case model.StateCanceling:
		return ui.localization.GetText(KeyStateCanceling)
	default:
		return ui.localization.GetText(KeyStateIdle)
	}
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.ApplySettings()
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		log.Printf("Settings saved, language %s", ui.localization.GetCurrentLanguage())
		ui.refreshUITexts()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// refreshUITexts re-applies localized labels after a language change
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.runBtn.SetText(IconPlay + " " + t(KeyRunDemo))
	ui.fillBtn.SetText(t(KeyFill))
	ui.instantBtn.SetText(t(KeyFillInstant))
	ui.pauseBtn.SetText(IconPause + " " + t(KeyPause))
	ui.resumeBtn.SetText(IconPlay + " " + t(KeyResume))
	ui.cancelBtn.SetText(IconStop + " " + t(KeyCancel))
	ui.resetBtn.SetText(IconReset + " " + t(KeyReset))
	ui.statusText = ""
	ui.onProgressChanged(ui.progress.Fill(), ui.progress.State())
}
