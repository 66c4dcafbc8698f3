package gapbuffer

import (
	"errors"
	"testing"

	"github.com/dshills/gaptext/internal/symbol"
)

// checkInvariants verifies the structural invariants that must hold after
// every operation: gap bounds inside the region and logical text that is
// well-formed UTF-8.
func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()

	if b.gapOffset < 0 || b.gapLength < 0 {
		t.Fatalf("negative gap fields: offset=%d length=%d", b.gapOffset, b.gapLength)
	}
	if b.gapOffset+b.gapLength > len(b.data) {
		t.Fatalf("gap [%d, %d) outside region of %d bytes",
			b.gapOffset, b.gapOffset+b.gapLength, len(b.data))
	}
	if !symbol.Valid(b.before()) || !symbol.Valid(b.after()) {
		t.Fatalf("logical text is not valid UTF-8: %q + %q", b.before(), b.after())
	}
}

func mustInsert(t *testing.T, b *Buffer, s string) {
	t.Helper()
	if err := b.InsertString(s); err != nil {
		t.Fatalf("InsertString(%q) failed: %v", s, err)
	}
}

func TestNew(t *testing.T) {
	b := New(64)

	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got %d bytes", b.Len())
	}
	if b.Cap() != 64 {
		t.Errorf("expected capacity 64, got %d", b.Cap())
	}
	if !b.Growable() {
		t.Error("expected a growable buffer")
	}
	if b.Offset() != 0 {
		t.Errorf("expected edit point at 0, got %d", b.Offset())
	}
	checkInvariants(t, b)
}

func TestNewNegativeCapacity(t *testing.T) {
	b := New(-1)
	if b.Cap() != 0 {
		t.Errorf("expected zero capacity, got %d", b.Cap())
	}
	mustInsert(t, b, "still grows")
	if b.String() != "still grows" {
		t.Errorf("unexpected content %q", b.String())
	}
}

func TestNewFromString(t *testing.T) {
	b, err := NewFromString("héllo\nwörld")
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	if b.String() != "héllo\nwörld" {
		t.Errorf("unexpected content %q", b.String())
	}
	if b.Offset() != b.Len() {
		t.Errorf("expected edit point at end (%d), got %d", b.Len(), b.Offset())
	}
	checkInvariants(t, b)
}

func TestNewFromStringInvalid(t *testing.T) {
	_, err := NewFromString("a\x80b")
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestNewFixed(t *testing.T) {
	mem := make([]byte, 8)
	b := NewFixed(mem)

	if b.Growable() {
		t.Error("fixed buffer must not be growable")
	}
	if b.Cap() != 8 {
		t.Errorf("expected capacity 8, got %d", b.Cap())
	}

	mustInsert(t, b, "12345678")
	if b.String() != "12345678" {
		t.Errorf("unexpected content %q", b.String())
	}
	checkInvariants(t, b)
}

func TestNewFixedExhaustion(t *testing.T) {
	b := NewFixed(make([]byte, 4))
	mustInsert(t, b, "abcd")

	err := b.InsertString("e")
	if !errors.Is(err, ErrNotGrowable) {
		t.Fatalf("expected ErrNotGrowable, got %v", err)
	}
	if b.String() != "abcd" {
		t.Errorf("failed insert mutated buffer: %q", b.String())
	}
	if b.Cap() != 4 {
		t.Errorf("fixed buffer reallocated to %d bytes", b.Cap())
	}
	checkInvariants(t, b)
}

func TestNewFixedEmptyRegion(t *testing.T) {
	b := NewFixed(nil)

	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("expected zero-capacity buffer, got len=%d cap=%d", b.Len(), b.Cap())
	}
	if err := b.InsertString("x"); !errors.Is(err, ErrNotGrowable) {
		t.Fatalf("expected ErrNotGrowable, got %v", err)
	}
	if err := b.InsertString(""); err != nil {
		t.Fatalf("empty insert should succeed, got %v", err)
	}
}

func TestGrowthPreservesContent(t *testing.T) {
	b := New(4)
	mustInsert(t, b, "ab")
	b.MoveAbsolute(1)

	// Longer than the whole region, let alone the gap.
	long := "0123456789abcdef"
	mustInsert(t, b, long)

	want := "a" + long + "b"
	if b.String() != want {
		t.Errorf("expected %q, got %q", want, b.String())
	}
	if b.Offset() != 1+len(long) {
		t.Errorf("expected edit point %d, got %d", 1+len(long), b.Offset())
	}
	checkInvariants(t, b)
}

func TestGrowthDoubles(t *testing.T) {
	b := New(8)
	mustInsert(t, b, "12345678")
	mustInsert(t, b, "9")

	if b.Cap() < 16 {
		t.Errorf("expected at least doubled capacity, got %d", b.Cap())
	}
	if b.String() != "123456789" {
		t.Errorf("unexpected content %q", b.String())
	}
}

func TestRoundTripContent(t *testing.T) {
	parts := []string{"héllo", " ", "wörld", "\n", "日本語", "🎉", ""}

	b := New(0)
	var want string
	var wantBytes int
	for _, p := range parts {
		mustInsert(t, b, p)
		want += p
		wantBytes += len(p)
		checkInvariants(t, b)
	}

	if b.Len() != wantBytes {
		t.Errorf("expected %d bytes, got %d", wantBytes, b.Len())
	}
	if b.String() != want {
		t.Errorf("expected %q, got %q", want, b.String())
	}
}

func TestRuneCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
		{"a🎉b", 3},
	}

	for _, tt := range tests {
		b, err := NewFromString(tt.text)
		if err != nil {
			t.Fatalf("NewFromString(%q) failed: %v", tt.text, err)
		}
		// The count must not depend on where the gap sits.
		for pos := 0; pos <= tt.want; pos++ {
			b.MoveAbsolute(pos)
			if got := b.RuneCount(); got != tt.want {
				t.Errorf("RuneCount(%q) with gap at %d = %d, want %d", tt.text, pos, got, tt.want)
			}
		}
	}
}

func TestClone(t *testing.T) {
	b, err := NewFromString("héllo wörld")
	if err != nil {
		t.Fatal(err)
	}
	b.MoveAbsolute(5)

	c := b.Clone()

	if c.String() != b.String() {
		t.Errorf("clone content %q differs from %q", c.String(), b.String())
	}
	if c.Offset() != b.Offset() {
		t.Errorf("clone edit point %d differs from %d", c.Offset(), b.Offset())
	}
	if c.Growable() != b.Growable() {
		t.Error("clone growability differs")
	}
	checkInvariants(t, c)

	// Mutating the clone must not touch the original.
	mustInsert(t, c, "XYZ")
	if b.String() != "héllo wörld" {
		t.Errorf("clone mutation leaked into original: %q", b.String())
	}
}

func TestCloneFixed(t *testing.T) {
	mem := make([]byte, 8)
	b := NewFixed(mem)
	mustInsert(t, b, "abc")

	c := b.Clone()
	if c.Growable() {
		t.Error("clone of a fixed buffer must stay non-growable")
	}

	// The clone owns its region: writes to the original memory must not show.
	mem[0] = 'Z'
	if c.String() != "abc" {
		t.Errorf("clone shares memory with original: %q", c.String())
	}
}
