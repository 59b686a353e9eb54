// Package ui contains the Fyne-based radial progress widget and the demo
// window around it. The widget forwards fill/pause/resume/cancel/reset calls
// to a slice.Animator and draws the slice with gg into a canvas.Raster. All
// demo strings are localized via Localization.
package ui
