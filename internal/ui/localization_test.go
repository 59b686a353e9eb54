package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/radial-progress/internal/config"
)

func TestLocalizationLanguages(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		lang     string
		wantLang string
		wantText string
	}{
		{"en", "en", "Pause"},
		{"ru", "ru", "Пауза"},
		{"pt", "pt", "Pausar"},
		{"xx", "en", "Pause"},
	}

	for _, tt := range tests {
		l.SetLanguage(tt.lang)
		if got := l.GetCurrentLanguage(); got != tt.wantLang {
			t.Errorf("SetLanguage(%q): expected language %s, got %s", tt.lang, tt.wantLang, got)
		}
		if got := l.GetText(KeyPause); got != tt.wantText {
			t.Errorf("SetLanguage(%q): expected %q, got %q", tt.lang, tt.wantText, got)
		}
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	want := systemLanguage()
	if _, ok := l.texts[want]; !ok {
		want = "en"
	}
	if got := l.GetCurrentLanguage(); got != want {
		t.Errorf("Expected system language %s, got %s", want, got)
	}
}

func TestLanguagePart(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"ru-RU", "ru"},
		{"pt-BR", "pt"},
		{"zh-Hant-TW", "zh"},
		{"PT_br", "pt"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := languagePart(tt.locale); got != tt.want {
			t.Errorf("languagePart(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

// Every language offered in settings must have a full translation
func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]
	settings := config.NewSettings(test.NewApp())

	for lang := range settings.GetLanguageOptions() {
		if lang == "system" {
			continue
		}
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("No texts for language %s", lang)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalizationUnknownKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Unknown keys should fall back to the key, got %q", got)
	}
}
