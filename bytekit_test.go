package bytekit

import (
	"testing"

	"github.com/coregx/bytekit/alloc"
	"github.com/coregx/bytekit/byteset"
	"github.com/coregx/bytekit/cpu"
)

func TestEndToEndEqualAndOrder(t *testing.T) {
	if !Equal([]byte("abc"), []byte("abc")) {
		t.Fatal("Equal should be true for identical slices")
	}
	if Order([]byte("abc"), []byte("abd")) != Less {
		t.Fatal("Order(abc, abd) should be Less")
	}
}

func TestEndToEndFind(t *testing.T) {
	h := []byte("the quick brown fox")
	if got := Find(h, []byte("brown")); got != 10 {
		t.Fatalf("Find = %d, want 10", got)
	}
	if got := RFind(h, []byte("quick")); got != 4 {
		t.Fatalf("RFind = %d, want 4", got)
	}
}

func TestEndToEndFindByteSet(t *testing.T) {
	digits := byteset.ASCIIDigits()
	h := []byte("order-id-48213")
	if got := FindByteSet(h, digits); got != 9 {
		t.Fatalf("FindByteSet = %d, want 9", got)
	}
}

func TestEndToEndChecksumAndHash(t *testing.T) {
	data := []byte("payload-data")
	if Checksum(data) == 0 {
		t.Fatal("Checksum of non-empty payload should not be zero")
	}
	if Hash(data) != Hash(append([]byte(nil), data...)) {
		t.Fatal("Hash should be deterministic")
	}
}

func TestEndToEndLevenshtein(t *testing.T) {
	n, err := Levenshtein([]byte("kitten"), []byte("sitting"), alloc.System{})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("Levenshtein = %d, want 3", n)
	}
}

func TestEndToEndCapabilitiesAlwaysIncludeSerial(t *testing.T) {
	if !Capabilities().Has(cpu.Serial) {
		t.Fatal("Capabilities() should always include the Serial bit")
	}
}

func TestMustLevenshteinPanicsOnAllocFailure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLevenshtein should panic when the allocator is exhausted")
		}
	}()
	arena := alloc.NewArena(make([]byte, 0))
	MustLevenshtein([]byte("hello"), []byte("world"), arena)
}
