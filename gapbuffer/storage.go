package gapbuffer

// grow relocates the buffer to a region large enough to hold at least minFree
// free bytes, copying both text spans and reconstituting the gap at the same
// logical position. Callers invoke it only when gapLength < minFree.
func (b *Buffer) grow(minFree int) error {
	if !b.growable {
		return ErrNotGrowable
	}

	total := len(b.data)
	newTotal := 2 * total
	if newTotal < total+minFree {
		newTotal = total + minFree
	}

	data := make([]byte, newTotal)
	copy(data, b.before())
	after := b.after()
	copy(data[newTotal-len(after):], after)

	b.gapLength = newTotal - len(after) - b.gapOffset
	b.data = data
	return nil
}

// insertAtGapStart copies p into the start of the gap, advancing the edit
// point past it. The gap is enlarged first if p does not fit.
func (b *Buffer) insertAtGapStart(p []byte) error {
	if b.gapLength < len(p) {
		if err := b.grow(len(p)); err != nil {
			return err
		}
	}
	copy(b.data[b.gapOffset:], p)
	b.gapOffset += len(p)
	b.gapLength -= len(p)
	return nil
}

// insertAtGapEnd copies p into the end of the gap without moving the edit
// point. Used when re-seeding the after-gap span during Clone.
func (b *Buffer) insertAtGapEnd(p []byte) error {
	if b.gapLength < len(p) {
		if err := b.grow(len(p)); err != nil {
			return err
		}
	}
	copy(b.data[b.gapOffset+b.gapLength-len(p):], p)
	b.gapLength -= len(p)
	return nil
}

// slideLeft moves the gap n bytes toward the start of the region. The n bytes
// immediately before the gap become the head of the after-gap span.
func (b *Buffer) slideLeft(n int) {
	if n == 0 {
		return
	}
	copy(b.data[b.gapOffset+b.gapLength-n:], b.data[b.gapOffset-n:b.gapOffset])
	b.gapOffset -= n
}

// slideRight moves the gap n bytes toward the end of the region. The n bytes
// immediately after the gap become the tail of the before-gap span.
func (b *Buffer) slideRight(n int) {
	if n == 0 {
		return
	}
	gapEnd := b.gapOffset + b.gapLength
	copy(b.data[b.gapOffset:], b.data[gapEnd:gapEnd+n])
	b.gapOffset += n
}
