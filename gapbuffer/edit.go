package gapbuffer

import (
	"github.com/dshills/gaptext/internal/symbol"
)

// Insert validates p as UTF-8 and copies it in immediately before the edit
// point, which advances past the inserted bytes. Existing content is never
// reordered. The buffer grows as needed; a fixed-region buffer that cannot
// fit the insertion fails with ErrNotGrowable and is left unchanged.
func (b *Buffer) Insert(p []byte) error {
	if !symbol.Valid(p) {
		return ErrInvalidEncoding
	}
	return b.insertAtGapStart(p)
}

// InsertString inserts s at the edit point. See Insert.
func (b *Buffer) InsertString(s string) error {
	return b.Insert([]byte(s))
}

// RemoveBackwards deletes n symbols before the edit point by extending the
// gap backwards over them. Removing more symbols than precede the edit point
// deletes everything before it; that is not an error.
//
// It returns ErrCorrupted, with the buffer unmodified, if the text before
// the edit point is not valid UTF-8.
func (b *Buffer) RemoveBackwards(n int) error {
	i, err := b.precedingOffset(n)
	if err != nil {
		return err
	}
	b.gapLength += b.gapOffset - i
	b.gapOffset = i
	return nil
}

// RemoveForwards deletes n symbols after the edit point by extending the gap
// forwards over them, without moving the edit point. Removing more symbols
// than follow the edit point deletes everything after it.
func (b *Buffer) RemoveForwards(n int) {
	i := b.followingOffset(n)
	b.gapLength = i - b.gapOffset
}
