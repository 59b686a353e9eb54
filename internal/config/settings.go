package config

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyEmptyColor   = "empty_color"
	KeySliceColor   = "slice_color"
	KeySliceSize    = "slice_size"
	KeyLanguage     = "app_language"
	KeyDemoScript   = "demo_script"
	KeyFadeDuration = "fade_duration_ms"
)

// Default values
const (
	DefaultEmptyColor   = "#c7c7c7ff"
	DefaultSliceColor   = "#007affff"
	DefaultSliceSize    = 0.2
	DefaultLanguage     = "system"
	DefaultFadeDuration = 200 * time.Millisecond
)

// Slice size bounds, as a fraction of the circle radius
const (
	MinSliceSize = 0.01
	MaxSliceSize = 1.0
)

// MaxFadeDuration caps the configurable cancel fade
const MaxFadeDuration = 10 * time.Second

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEmptyColor returns the background disc colour
func (s *Settings) GetEmptyColor() color.Color {
	return s.colorValue(KeyEmptyColor, DefaultEmptyColor)
}

// SetEmptyColor stores the background disc colour as text (hex or colour name)
func (s *Settings) SetEmptyColor(value string) error {
	return s.setColorValue(KeyEmptyColor, value)
}

// GetSliceColor returns the slice stroke colour
func (s *Settings) GetSliceColor() color.Color {
	return s.colorValue(KeySliceColor, DefaultSliceColor)
}

// SetSliceColor stores the slice stroke colour as text (hex or colour name)
func (s *Settings) SetSliceColor(value string) error {
	return s.setColorValue(KeySliceColor, value)
}

// GetEmptyColorText returns the stored text for the disc colour
func (s *Settings) GetEmptyColorText() string {
	return s.app.Preferences().StringWithFallback(KeyEmptyColor, DefaultEmptyColor)
}

// GetSliceColorText returns the stored text for the slice colour
func (s *Settings) GetSliceColorText() string {
	return s.app.Preferences().StringWithFallback(KeySliceColor, DefaultSliceColor)
}

// GetSliceSize returns the slice thickness as a fraction of the radius
func (s *Settings) GetSliceSize() float64 {
	value := s.app.Preferences().Float(KeySliceSize)
	if value <= 0 {
		s.SetSliceSize(DefaultSliceSize)
		return DefaultSliceSize
	}
	return value
}

// SetSliceSize sets the slice thickness, clamped to [MinSliceSize, MaxSliceSize]
func (s *Settings) SetSliceSize(size float64) {
	s.app.Preferences().SetFloat(KeySliceSize, ClampSliceSize(size))
}

// GetFadeDuration returns the fade used by the demo's cancel button
func (s *Settings) GetFadeDuration() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyFadeDuration, -1)
	if ms < 0 {
		s.SetFadeDuration(DefaultFadeDuration)
		return DefaultFadeDuration
	}
	return time.Duration(ms) * time.Millisecond
}

// SetFadeDuration sets the cancel fade, clamped to [0, MaxFadeDuration]
func (s *Settings) SetFadeDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	if d > MaxFadeDuration {
		d = MaxFadeDuration
	}
	s.app.Preferences().SetInt(KeyFadeDuration, int(d/time.Millisecond))
}

// GetDemoScript returns the path of the demo script, empty for the built-in one
func (s *Settings) GetDemoScript() string {
	return s.app.Preferences().String(KeyDemoScript)
}

// SetDemoScript sets the demo script path
func (s *Settings) SetDemoScript(path string) {
	s.app.Preferences().SetString(KeyDemoScript, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ClampSliceSize limits a slice thickness to [MinSliceSize, MaxSliceSize]
func ClampSliceSize(size float64) float64 {
	if size < MinSliceSize {
		return MinSliceSize
	}
	if size > MaxSliceSize {
		return MaxSliceSize
	}
	return size
}

func (s *Settings) colorValue(key, fallback string) color.Color {
	text := s.app.Preferences().StringWithFallback(key, fallback)
	c, err := ParseColor(text)
	if err != nil {
		// Stored value went bad; fall back silently, the default always parses
		c, _ = ParseColor(fallback)
	}
	return c
}

func (s *Settings) setColorValue(key, value string) error {
	if _, err := ParseColor(value); err != nil {
		return err
	}
	s.app.Preferences().SetString(key, value)
	return nil
}
