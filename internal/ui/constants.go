package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconStop     = "■"
	IconReset    = "↺"
	IconDone     = "✔"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Widget sizing
const (
	// MinDiameter is the smallest disc the widget asks for
	MinDiameter float32 = 32

	// DemoDiameter is the preferred disc size in the demo window
	DemoDiameter float32 = 240
)

// Demo window
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 520

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 460
)

// Manual control defaults
const (
	ManualFillDuration = 3 * time.Second
)

// FrameLoopPeriod is the length of one cycle of the repeating frame
// animation. Ticks arrive every frame regardless of this value.
const FrameLoopPeriod = time.Second
