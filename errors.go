package sentinel

import "errors"

var (
	// ErrStaleHandle indicates the handle's element was already detached.
	ErrStaleHandle = errors.New("invalid or stale handle")

	// ErrForeignHandle indicates the handle belongs to a different list.
	ErrForeignHandle = errors.New("handle belongs to a different list")

	// ErrIteratorInvalidated indicates the list was structurally modified during iteration.
	ErrIteratorInvalidated = errors.New("list modified during iteration")

	// ErrCorruptRing indicates a broken ring invariant.
	ErrCorruptRing = errors.New("corrupt ring")
)
