// Package script describes timed sequences of progress operations (fill,
// instant fill, pause, resume, cancel, reset) and plays them against any
// target on a clock.Scheduler. Scripts load from YAML or .properties files;
// Default returns the built-in demonstration sequence.
package script
