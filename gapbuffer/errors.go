package gapbuffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrInvalidEncoding indicates insertion input that is not well-formed UTF-8.
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")

	// ErrNotGrowable indicates an insertion that does not fit a fixed-region buffer.
	ErrNotGrowable = errors.New("buffer is not growable")

	// ErrCorrupted indicates malformed UTF-8 inside the buffer itself, found
	// while scanning backwards from the edit point. It can only occur if the
	// region wrapped by NewFixed was mutated externally; the operation that
	// detects it leaves the buffer unmodified.
	ErrCorrupted = errors.New("buffer contains malformed UTF-8 before the edit point")
)
