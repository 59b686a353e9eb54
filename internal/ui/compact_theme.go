package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is the demo theme: default look with the slice blue as the
// primary colour and slightly tighter padding
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0, G: 122, B: 255, A: 255} // Slice blue
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255} // Green for completion
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	return theme.DefaultTheme().Size(name)
}
