// Package gapbuffer provides a mutable UTF-8 text store for interactive
// editors, built on a single contiguous byte region with a movable gap.
//
// The region is logically split into the text before the gap, the gap itself
// (unused capacity) and the text after the gap. The edit point is always the
// start of the gap: insertions fill the gap, deletions widen it, and cursor
// movement slides it through the text. Edits clustered near the edit point
// cost amortized O(1).
//
// # Units
//
// Cursor movement and deletion counts are measured in symbols — Unicode code
// points encoded as 1 to 4 UTF-8 bytes. The buffer never splits a code point
// at the gap boundary or at either end, and InsertString rejects input that
// is not well-formed UTF-8. Combining sequences are not grouped; one code
// point is one step.
//
// # Basic Usage
//
//	buf := gapbuffer.New(128)
//	buf.InsertString("hello\nworld")
//
//	buf.MoveAbsolute(5)          // edit point after "hello"
//	buf.InsertString(",")        // "hello,\nworld"
//	buf.RemoveBackwards(1)       // back to "hello\nworld"
//
//	it := buf.Lines()
//	for it.Next() {
//	    fmt.Println(it.Text())
//	}
//	it.Close()
//
// # Growth
//
// Buffers created with New grow on demand: when an insertion does not fit the
// gap, the region is reallocated to max(2*Cap(), Cap()+needed) and both text
// spans are copied over. Buffers created with NewFixed wrap caller-supplied
// memory, never reallocate and never write outside it; insertions that do not
// fit fail with ErrNotGrowable and leave the buffer unchanged.
//
// # Thread Safety
//
// A Buffer is not safe for concurrent use. It is designed for a single-writer
// discipline: one edit session owns the buffer and serializes every call.
// A LineIterator borrows the buffer's memory; using it across an intervening
// mutation yields stale or invalid views, so traversal and editing must not
// interleave.
package gapbuffer
