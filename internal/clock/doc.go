// Package clock provides the time source and deferred-call primitive used by
// animations. The system implementation runs deferred calls back on the UI
// main context; Manual lets tests drive time deterministically.
package clock
