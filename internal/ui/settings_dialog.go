package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/radial-progress/internal/config"
	"github.com/ytget/radial-progress/internal/script"
)

// SettingsDialog edits widget appearance and demo settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	emptyColorEntry   *widget.Entry
	sliceColorEntry   *widget.Entry
	sliceSizeEntry    *widget.Entry
	fadeDurationEntry *widget.Entry
	scriptEntry       *widget.Entry
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.emptyColorEntry = widget.NewEntry()
	sd.emptyColorEntry.SetPlaceHolder(config.DefaultEmptyColor)
	sd.emptyColorEntry.Validator = validateColor

	sd.sliceColorEntry = widget.NewEntry()
	sd.sliceColorEntry.SetPlaceHolder(config.DefaultSliceColor)
	sd.sliceColorEntry.Validator = validateColor

	sd.sliceSizeEntry = widget.NewEntry()
	sd.sliceSizeEntry.SetPlaceHolder(fmt.Sprintf("%.2f-%.2f", config.MinSliceSize, config.MaxSliceSize))

	sd.fadeDurationEntry = widget.NewEntry()
	sd.fadeDurationEntry.SetPlaceHolder(strconv.FormatInt(config.DefaultFadeDuration.Milliseconds(), 10))

	sd.scriptEntry = widget.NewEntry()
	sd.scriptEntry.SetPlaceHolder(t(KeyBuiltInScript))
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseScript)
	scriptRow := container.NewBorder(nil, nil, nil, browseBtn, sd.scriptEntry)

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = t(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(t(KeyEmptyColor)+":"),
		sd.emptyColorEntry,

		widget.NewLabel(t(KeySliceColor)+":"),
		sd.sliceColorEntry,

		widget.NewLabel(t(KeySliceSize)+":"),
		sd.sliceSizeEntry,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyFadeDuration)+":"),
		sd.fadeDurationEntry,

		widget.NewLabel(t(KeyDemoScript)+":"),
		scriptRow,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyClose),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.emptyColorEntry.SetText(sd.settings.GetEmptyColorText())
	sd.sliceColorEntry.SetText(sd.settings.GetSliceColorText())
	// Placeholders show the resolved colour of the stored value
	sd.emptyColorEntry.SetPlaceHolder(config.FormatColor(sd.settings.GetEmptyColor()))
	sd.sliceColorEntry.SetPlaceHolder(config.FormatColor(sd.settings.GetSliceColor()))
	sd.sliceSizeEntry.SetText(strconv.FormatFloat(sd.settings.GetSliceSize(), 'f', -1, 64))
	sd.fadeDurationEntry.SetText(strconv.FormatInt(sd.settings.GetFadeDuration().Milliseconds(), 10))
	sd.scriptEntry.SetText(sd.settings.GetDemoScript())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseScript() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.scriptEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave stores the edited values. Nothing is stored when any value is invalid.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply validates every field first, then writes them to settings
func (sd *SettingsDialog) apply() error {
	emptyColor := strings.TrimSpace(sd.emptyColorEntry.Text)
	sliceColor := strings.TrimSpace(sd.sliceColorEntry.Text)
	for _, value := range []string{emptyColor, sliceColor} {
		if value == "" {
			continue
		}
		if err := validateColor(value); err != nil {
			return err
		}
	}

	sliceSize := sd.settings.GetSliceSize()
	if text := strings.TrimSpace(sd.sliceSizeEntry.Text); text != "" {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("slice size %q: %w", text, err)
		}
		sliceSize = v
	}

	fade := sd.settings.GetFadeDuration()
	if text := strings.TrimSpace(sd.fadeDurationEntry.Text); text != "" {
		ms, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("fade duration %q: %w", text, err)
		}
		fade = time.Duration(ms) * time.Millisecond
	}

	scriptPath := strings.TrimSpace(sd.scriptEntry.Text)
	if scriptPath != "" {
		if _, err := script.FormatForPath(scriptPath); err != nil {
			return err
		}
	}

	if emptyColor != "" {
		if err := sd.settings.SetEmptyColor(emptyColor); err != nil {
			return err
		}
	}
	if sliceColor != "" {
		if err := sd.settings.SetSliceColor(sliceColor); err != nil {
			return err
		}
	}
	sd.settings.SetSliceSize(sliceSize)
	sd.settings.SetFadeDuration(fade)
	sd.settings.SetDemoScript(scriptPath)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return nil
}

func validateColor(text string) error {
	_, err := config.ParseColor(strings.TrimSpace(text))
	return err
}
