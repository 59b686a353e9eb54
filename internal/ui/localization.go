package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyRunDemo          = "run_demo"
	KeyFill             = "fill"
	KeyFillInstant      = "fill_instant"
	KeyPause            = "pause"
	KeyResume           = "resume"
	KeyCancel           = "cancel"
	KeyReset            = "reset"
	KeySettings         = "settings"
	KeySave             = "save"
	KeyClose            = "close"
	KeyBrowse           = "browse"
	KeyLanguage         = "language"
	KeyEmptyColor       = "empty_color"
	KeySliceColor       = "slice_color"
	KeySliceSize        = "slice_size"
	KeyFadeDuration     = "fade_duration"
	KeyDemoScript       = "demo_script"
	KeyBuiltInScript    = "built_in_script"
	KeyCompleted        = "completed"
	KeySettingsSaved    = "settings_saved"
	KeyScriptLoadFailed = "script_load_failed"
	KeyStateIdle        = "state_idle"
	KeyStateAnimating   = "state_animating"
	KeyStatePaused      = "state_paused"
	KeyStateCanceling   = "state_canceling"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the language of the
// user's locale; unknown languages fall back to English.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	} else {
		l.currentLanguage = "en"
	}
}

// systemLanguage returns the language part of the user's locale, e.g. "ru"
// for "ru-RU"
func systemLanguage() string {
	return languagePart(string(lang.SystemLocale()))
}

func languagePart(locale string) string {
	code, _, _ := strings.Cut(strings.ToLower(locale), "-")
	code, _, _ = strings.Cut(code, "_")
	return code
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Radial Progress",
		KeyRunDemo:          "Run demo",
		KeyFill:             "Fill",
		KeyFillInstant:      "Fill 90%",
		KeyPause:            "Pause",
		KeyResume:           "Resume",
		KeyCancel:           "Cancel",
		KeyReset:            "Reset",
		KeySettings:         "Settings",
		KeySave:             "Save",
		KeyClose:            "Close",
		KeyBrowse:           "Browse",
		KeyLanguage:         "Language",
		KeyEmptyColor:       "Disc colour",
		KeySliceColor:       "Slice colour",
		KeySliceSize:        "Slice thickness (fraction of radius)",
		KeyFadeDuration:     "Cancel fade (ms)",
		KeyDemoScript:       "Demo script (.yaml or .properties)",
		KeyBuiltInScript:    "built-in demo",
		KeyCompleted:        "Completed",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyScriptLoadFailed: "Could not load demo script, using the built-in one",
		KeyStateIdle:        "Idle",
		KeyStateAnimating:   "Animating",
		KeyStatePaused:      "Paused",
		KeyStateCanceling:   "Canceling",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Круговой прогресс",
		KeyRunDemo:          "Запустить демо",
		KeyFill:             "Заполнить",
		KeyFillInstant:      "Сразу 90%",
		KeyPause:            "Пауза",
		KeyResume:           "Продолжить",
		KeyCancel:           "Отменить",
		KeyReset:            "Сбросить",
		KeySettings:         "Настройки",
		KeySave:             "Сохранить",
		KeyClose:            "Закрыть",
		KeyBrowse:           "Обзор",
		KeyLanguage:         "Язык",
		KeyEmptyColor:       "Цвет диска",
		KeySliceColor:       "Цвет сектора",
		KeySliceSize:        "Толщина сектора (доля радиуса)",
		KeyFadeDuration:     "Затухание при отмене (мс)",
		KeyDemoScript:       "Сценарий демо (.yaml или .properties)",
		KeyBuiltInScript:    "встроенное демо",
		KeyCompleted:        "Завершено",
		KeySettingsSaved:    "Настройки сохранены!",
		KeyScriptLoadFailed: "Не удалось загрузить сценарий, используется встроенный",
		KeyStateIdle:        "Ожидание",
		KeyStateAnimating:   "Анимация",
		KeyStatePaused:      "Пауза",
		KeyStateCanceling:   "Отмена",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Progresso Radial",
		KeyRunDemo:          "Executar demo",
		KeyFill:             "Preencher",
		KeyFillInstant:      "Preencher 90%",
		KeyPause:            "Pausar",
		KeyResume:           "Retomar",
		KeyCancel:           "Cancelar",
		KeyReset:            "Reiniciar",
		KeySettings:         "Configurações",
		KeySave:             "Salvar",
		KeyClose:            "Fechar",
		KeyBrowse:           "Procurar",
		KeyLanguage:         "Idioma",
		KeyEmptyColor:       "Cor do disco",
		KeySliceColor:       "Cor da fatia",
		KeySliceSize:        "Espessura da fatia (fração do raio)",
		KeyFadeDuration:     "Esmaecimento ao cancelar (ms)",
		KeyDemoScript:       "Roteiro da demo (.yaml ou .properties)",
		KeyBuiltInScript:    "demo embutida",
		KeyCompleted:        "Concluído",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyScriptLoadFailed: "Não foi possível carregar o roteiro, usando o embutido",
		KeyStateIdle:        "Parado",
		KeyStateAnimating:   "Animando",
		KeyStatePaused:      "Pausado",
		KeyStateCanceling:   "Cancelando",
	}
}
