package gic

import "errors"

var (
	// ErrOutOfRange reports a configuration contract violation: an
	// interrupt ID, category offset or core index outside the range the
	// operation accepts. There is no safe continuation; the caller's
	// request was malformed.
	ErrOutOfRange = errors.New("out of range")

	// ErrNotLatched reports that an in-range interrupt line failed to
	// latch its enable bit. The request was valid but this hardware
	// instantiation does not implement the line.
	ErrNotLatched = errors.New("enable bit did not latch")
)
