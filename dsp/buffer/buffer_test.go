package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestResizeGrowPreservesData(t *testing.T) {
	b := New(2)
	b.Samples()[0] = 1
	b.Samples()[1] = 2

	b.Resize(5)
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if b.Samples()[0] != 1 || b.Samples()[1] != 2 {
		t.Fatalf("Resize lost data: %v", b.Samples())
	}
}

func TestResizeShrinkKeepsCapacity(t *testing.T) {
	b := New(8)
	b.Resize(3)
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if b.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", b.Cap())
	}

	b.Resize(-4)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative resize", b.Len())
	}
}
