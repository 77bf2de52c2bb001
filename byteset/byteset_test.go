package byteset

import "testing"

func TestEmptyContainsNothing(t *testing.T) {
	s := Empty()
	for b := 0; b < 256; b++ {
		if s.Contains(byte(b)) {
			t.Fatalf("empty set contains %d", b)
		}
	}
}

func TestASCIIContainsLowerHalf(t *testing.T) {
	s := ASCII()
	for b := 0; b < 128; b++ {
		if !s.Contains(byte(b)) {
			t.Fatalf("ASCII() missing byte %d", b)
		}
	}
	for b := 128; b < 256; b++ {
		if s.Contains(byte(b)) {
			t.Fatalf("ASCII() unexpectedly contains byte %d", b)
		}
	}
}

func TestAddIdempotent(t *testing.T) {
	var s Set
	s.Add('x')
	s.Add('x')
	if !s.Contains('x') {
		t.Fatal("expected 'x' to be a member")
	}
	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestAddRangeAndCount(t *testing.T) {
	var s Set
	s.AddRange('0', '9')
	if s.Count() != 10 {
		t.Fatalf("Count() = %d, want 10", s.Count())
	}
	for b := byte('0'); b <= '9'; b++ {
		if !s.Contains(b) {
			t.Fatalf("missing digit %c", b)
		}
	}
	if s.Contains('a') {
		t.Fatal("unexpected member 'a'")
	}
}

func TestInvert(t *testing.T) {
	s := ASCIIDigits()
	inv := s.Invert()
	for b := byte('0'); b <= '9'; b++ {
		if inv.Contains(b) {
			t.Fatalf("inverted set still contains digit %c", b)
		}
	}
	if !inv.Contains('a') {
		t.Fatal("inverted set should contain non-digit bytes")
	}
	// Double invert is identity.
	if s.Invert().Invert() != s {
		t.Fatal("double invert should be identity")
	}
}

func TestASCIIHex(t *testing.T) {
	s := ASCIIHex()
	for _, b := range []byte("0123456789abcdefABCDEF") {
		if !s.Contains(b) {
			t.Fatalf("ASCIIHex missing %c", b)
		}
	}
	if s.Contains('g') || s.Contains('Z') {
		t.Fatal("ASCIIHex contains non-hex byte")
	}
}

func TestASCIINucleotideIUPAC(t *testing.T) {
	s := ASCIINucleotideIUPAC()
	for _, b := range []byte("ACGTURYSWKMBDHVNacgturyswkmbdhvn") {
		if !s.Contains(b) {
			t.Fatalf("missing IUPAC code %c", b)
		}
	}
	if s.Contains('Z') || s.Contains('0') {
		t.Fatal("unexpected member outside IUPAC alphabet")
	}
}

func TestWords(t *testing.T) {
	s := ASCII()
	w := s.Words()
	if w[0] != ^uint64(0) || w[1] != ^uint64(0) || w[2] != 0 || w[3] != 0 {
		t.Fatalf("unexpected words for ASCII(): %v", w)
	}
}
