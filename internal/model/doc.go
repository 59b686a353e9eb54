// Package model defines the small value types shared by the animator and the
// widget: the slice animation state enum and fill value clamping. Types are
// kept free of UI dependencies so they can be bound directly in the UI.
package model
