package model

// AnimationState represents the current state of a slice animator
type AnimationState string

const (
	// StateIdle means no timeline is running and the fill is settled
	StateIdle AnimationState = "Idle"

	// StateAnimating means the fill value is interpolating toward a target
	StateAnimating AnimationState = "Animating"

	// StatePaused means the fill timeline is frozen at its current progress
	StatePaused AnimationState = "Paused"

	// StateCanceling means the slice is fading out before resetting to empty
	StateCanceling AnimationState = "Canceling"
)

// String returns the string representation of AnimationState
func (s AnimationState) String() string {
	return string(s)
}

// IsActive returns true if a timeline is running and needs frames
func (s AnimationState) IsActive() bool {
	return s == StateAnimating || s == StateCanceling
}
