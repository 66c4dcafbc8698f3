package gapbuffer

import (
	"github.com/dshills/gaptext/internal/symbol"
)

// Buffer is a gap buffer over a single contiguous byte region.
//
// The logical text is data[0:gapOffset] followed by data[gapOffset+gapLength:].
// The gap in between holds no content; its start is the edit point. The zero
// value is a valid empty, non-growable buffer with no capacity.
type Buffer struct {
	data      []byte
	gapOffset int
	gapLength int
	growable  bool
}

// New creates an empty growable buffer with the given initial capacity in
// bytes. The gap spans the whole region. A negative capacity is treated as
// zero.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		data:      make([]byte, capacity),
		gapLength: capacity,
		growable:  true,
	}
}

// NewFromString creates a growable buffer holding s, with the edit point at
// the end. It returns ErrInvalidEncoding if s is not well-formed UTF-8.
func NewFromString(s string) (*Buffer, error) {
	b := New(len(s))
	if err := b.InsertString(s); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFixed creates a buffer over caller-supplied memory. The buffer never
// reallocates, frees or writes outside mem; insertions that exceed len(mem)
// bytes of content fail with ErrNotGrowable. Any prior content of mem is
// ignored — the gap spans the whole region.
func NewFixed(mem []byte) *Buffer {
	return &Buffer{
		data:      mem,
		gapLength: len(mem),
	}
}

// Clone returns an independent deep copy of the buffer, preserving content,
// edit point and growability. Clones of fixed-region buffers own their copy
// of the region.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		data:      make([]byte, len(b.data)),
		gapLength: len(b.data),
		growable:  b.growable,
	}
	// Re-seeding both edges reproduces the gap at the same position.
	c.insertAtGapStart(b.before())
	c.insertAtGapEnd(b.after())
	return c
}

// before returns the text span preceding the gap.
func (b *Buffer) before() []byte {
	return b.data[:b.gapOffset]
}

// after returns the text span following the gap.
func (b *Buffer) after() []byte {
	return b.data[b.gapOffset+b.gapLength:]
}

// Len returns the byte length of the logical text.
func (b *Buffer) Len() int {
	return len(b.data) - b.gapLength
}

// Cap returns the total size of the managed region in bytes.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Offset returns the byte offset of the edit point within the logical text.
func (b *Buffer) Offset() int {
	return b.gapOffset
}

// Growable reports whether the buffer may reallocate to a larger region.
func (b *Buffer) Growable() bool {
	return b.growable
}

// RuneCount returns the number of symbols in the logical text.
func (b *Buffer) RuneCount() int {
	return countSymbols(b.before()) + countSymbols(b.after())
}

// String returns the logical text.
func (b *Buffer) String() string {
	out := make([]byte, 0, b.Len())
	out = append(out, b.before()...)
	out = append(out, b.after()...)
	return string(out)
}

func countSymbols(p []byte) int {
	n := 0
	for i := 0; i < len(p); i += symbol.Len(p[i]) {
		n++
	}
	return n
}
