package gapbuffer

import (
	"github.com/dshills/gaptext/internal/symbol"
)

// precedingOffset returns the byte offset of the n-th symbol before the edit
// point, walking backwards over continuation bytes. If fewer than n symbols
// precede the edit point it stops at 0.
//
// The walk trusts the text before the gap to be valid UTF-8. If it is not,
// the scan would run past the start of the region; that case is reported as
// ErrCorrupted instead.
func (b *Buffer) precedingOffset(n int) (int, error) {
	i := b.gapOffset
	for n > 0 && i > 0 {
		i--
		for symbol.IsContinuation(b.data[i]) {
			if i == 0 {
				return 0, ErrCorrupted
			}
			i--
		}
		n--
	}
	return i, nil
}

// followingOffset returns the byte offset of the n-th symbol after the gap,
// walking forwards by encoded symbol length. If fewer than n symbols follow,
// it stops at the end of the region.
func (b *Buffer) followingOffset(n int) int {
	i := b.gapOffset + b.gapLength
	for n > 0 && i < len(b.data) {
		i += symbol.Len(b.data[i])
		n--
	}
	if i > len(b.data) {
		i = len(b.data)
	}
	return i
}

// MoveRelative moves the edit point delta symbols: backwards when delta is
// negative, forwards otherwise. Movement past either end of the text clamps
// silently. The slide copies exactly the bytes between the old and new edit
// point.
//
// It returns ErrCorrupted, with the buffer unmodified, if a backward move
// finds malformed UTF-8 before the edit point.
func (b *Buffer) MoveRelative(delta int) error {
	if delta < 0 {
		i, err := b.precedingOffset(-delta)
		if err != nil {
			return err
		}
		b.slideLeft(b.gapOffset - i)
		return nil
	}

	i := b.followingOffset(delta)
	b.slideRight(i - b.gapOffset - b.gapLength)
	return nil
}

// MoveAbsolute moves the edit point to n symbols from the start of the
// logical text, scanning forward from byte 0 and jumping the gap
// transparently. If the text has fewer than n symbols the edit point lands at
// the end.
func (b *Buffer) MoveAbsolute(n int) {
	var i int
	if b.gapOffset == 0 {
		i = b.gapLength
	}

	for n > 0 && i < len(b.data) {
		i += symbol.Len(b.data[i])
		if i == b.gapOffset {
			// The scan reached the gap; jump over it.
			i += b.gapLength
		}
		n--
	}
	if i > len(b.data) {
		i = len(b.data)
	}

	if i <= b.gapOffset {
		b.slideLeft(b.gapOffset - i)
	} else {
		b.slideRight(i - b.gapOffset - b.gapLength)
	}
}
