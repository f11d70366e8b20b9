package gicv3

import "errors"

var (
	// ErrAlreadyAwake is returned by MarkCoreAwake when the redistributor
	// already reports the core as awake.
	ErrAlreadyAwake = errors.New("core is already awake")

	// ErrAlreadyAsleep is returned by MarkCoreAsleep when the redistributor
	// already reports the core as asleep.
	ErrAlreadyAsleep = errors.New("core is already asleep")
)
