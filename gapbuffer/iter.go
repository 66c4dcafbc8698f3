package gapbuffer

// DefaultScratchSize is the initial capacity, in bytes, of the scratch region
// a LineIterator uses to assemble lines that straddle the gap. Longer lines
// spill to a larger temporary allocation. Tune with WithScratchSize.
const DefaultScratchSize = 512

// LineOption configures a LineIterator.
type LineOption func(*LineIterator)

// WithScratchSize sets the scratch capacity for assembling straddling lines.
// Values below 1 are ignored.
func WithScratchSize(n int) LineOption {
	return func(it *LineIterator) {
		if n > 0 {
			it.scratchSize = n
		}
	}
}

// LineIterator yields the logical lines of a buffer in order, reassembling
// lines whose bytes are split across the gap. It borrows the buffer's memory
// read-only: the buffer must not be mutated while a traversal is in flight,
// and the iterator is not restartable — call Lines again instead.
type LineIterator struct {
	buf         *Buffer
	cursor      int
	crossedGap  bool
	scratchSize int
	scratch     []byte
	line        []byte
}

// Lines returns an iterator over the buffer's lines, starting at the first.
func (b *Buffer) Lines(opts ...LineOption) *LineIterator {
	it := &LineIterator{
		buf:         b,
		scratchSize: DefaultScratchSize,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Next advances to the next line. It returns false when the buffer content
// is exhausted. An unterminated final fragment is still yielded once.
func (it *LineIterator) Next() bool {
	it.line = nil

	b := it.buf
	data := b.data
	total := len(data)
	i := it.cursor

	if it.crossedGap {
		start := i
		for i < total && data[i] != '\n' {
			i++
		}
		length := i - start
		if i < total {
			i++ // consume the delimiter
		} else if length == 0 {
			return false
		}
		it.line = data[start : start+length]
		it.cursor = i
		return true
	}

	start := i
	for i < b.gapOffset && data[i] != '\n' {
		i++
	}
	if i < b.gapOffset {
		// Whole line before the gap; yield a direct view.
		it.line = data[start:i]
		it.cursor = i + 1
		return true
	}

	// The scan hit the gap with no delimiter: the line straddles it. Resume
	// on the far side and stitch the two spans together.
	firstLen := b.gapOffset - start
	i += b.gapLength
	start2 := i
	for i < total && data[i] != '\n' {
		i++
	}
	secondLen := i - start2
	if i < total {
		i++ // consume the delimiter
	} else if firstLen+secondLen == 0 {
		it.crossedGap = true
		it.cursor = i
		return false
	}

	it.crossedGap = true
	it.cursor = i

	if it.scratch == nil {
		it.scratch = make([]byte, 0, it.scratchSize)
	}
	joined := append(it.scratch[:0], data[start:start+firstLen]...)
	joined = append(joined, data[start2:start2+secondLen]...)
	it.line = joined
	return true
}

// Bytes returns the current line without its delimiter. The slice may point
// into the buffer or into iterator-owned scratch; it is valid only until the
// next call to Next or Close, or any mutation of the buffer.
func (it *LineIterator) Bytes() []byte {
	return it.line
}

// Text returns the current line as a string copy.
func (it *LineIterator) Text() string {
	return string(it.line)
}

// Close releases the scratch and any spilled line assembly. It is idempotent;
// the iterator must not be used afterwards.
func (it *LineIterator) Close() {
	it.line = nil
	it.scratch = nil
}
