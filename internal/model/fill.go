package model

import "math"

// Fill bounds
const (
	MinFill = 0.0
	MaxFill = 1.0
)

// ClampFill limits a fill value to [MinFill, MaxFill]. NaN maps to MinFill.
func ClampFill(v float64) float64 {
	if math.IsNaN(v) || v < MinFill {
		return MinFill
	}
	if v > MaxFill {
		return MaxFill
	}
	return v
}

// IsFull reports whether a fill value is exactly full.
func IsFull(v float64) bool {
	return v == MaxFill
}

// Percent converts a fill value to a rounded 0..100 percentage
func Percent(v float64) int {
	return int(math.Round(ClampFill(v) * 100))
}
