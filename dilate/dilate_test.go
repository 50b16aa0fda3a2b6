package dilate

import "testing"

func TestDilate7RoundTrip(t *testing.T) {
	t.Parallel()
	for n := uint64(0); n < 512; n++ {
		d := Dilate7(n)
		if got := Undilate7(d); got != n {
			t.Errorf("Undilate7(Dilate7(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestDilate6RoundTrip(t *testing.T) {
	t.Parallel()
	for n := uint64(0); n < 1024; n++ {
		d := Dilate6(n)
		if got := Undilate6(d); got != n {
			t.Errorf("Undilate6(Dilate6(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestDilate7BitSpacing(t *testing.T) {
	t.Parallel()
	// bit i of n should land at bit 7*i of Dilate7(n).
	for i := uint(0); i < 9; i++ {
		n := uint64(1) << i
		got := Dilate7(n)
		want := uint64(1) << (7 * i)
		if got != want {
			t.Errorf("Dilate7(1<<%d) = %#x, want %#x", i, got, want)
		}
	}
}

func TestDilate6BitSpacing(t *testing.T) {
	t.Parallel()
	for i := uint(0); i < 10; i++ {
		n := uint64(1) << i
		got := Dilate6(n)
		want := uint64(1) << (6 * i)
		if got != want {
			t.Errorf("Dilate6(1<<%d) = %#x, want %#x", i, got, want)
		}
	}
}

func TestWidthTypesMatchFunctions(t *testing.T) {
	t.Parallel()
	var w7 Width7
	var w6 Width6
	if w7.Dilate(42) != Dilate7(42) {
		t.Errorf("Width7.Dilate(42) != Dilate7(42)")
	}
	if w6.Dilate(42) != Dilate6(42) {
		t.Errorf("Width6.Dilate(42) != Dilate6(42)")
	}
}
