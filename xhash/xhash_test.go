package xhash

import "testing"

func TestSumDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	if Sum(data) != Sum(append([]byte(nil), data...)) {
		t.Fatal("Sum should be deterministic for equal byte content")
	}
}

func TestSumDiffersForDifferentInputs(t *testing.T) {
	a := Sum([]byte("hello"))
	b := Sum([]byte("hellp"))
	if a == b {
		t.Fatal("Sum should (overwhelmingly likely) differ for different inputs")
	}
}

func TestSumAcrossLengths(t *testing.T) {
	seen := map[uint64]string{}
	for n := 0; n <= 20; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte('a' + i%26)
		}
		h := Sum(data)
		if prev, ok := seen[h]; ok {
			t.Errorf("hash collision between length-%d input and %q at value %d", n, prev, h)
		}
		seen[h] = string(data)
	}
}

func TestSumEmpty(t *testing.T) {
	// low=0, high=0 going in, so the mix is (0*phi)^(0*phi) == 0.
	if got := Sum(nil); got != 0 {
		t.Fatalf("Sum(nil) = %d, want 0", got)
	}
}

func TestSumStableAcrossUnrollBoundary(t *testing.T) {
	// Lengths 7 and 8 straddle the unrolled/reduced boundary; both must
	// still be pure functions of their byte content.
	a := []byte("abcdefg")
	b := []byte("abcdefgh")
	ha1, ha2 := Sum(a), Sum(append([]byte(nil), a...))
	hb1, hb2 := Sum(b), Sum(append([]byte(nil), b...))
	if ha1 != ha2 || hb1 != hb2 {
		t.Fatal("Sum not deterministic at unroll boundary")
	}
}
