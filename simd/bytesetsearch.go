package simd

import (
	"github.com/coregx/bytekit/byteset"
	"github.com/coregx/bytekit/cpu"
)

// FindByteSet returns the index of the first byte in h that is a member of
// set, or notFound if none is — spec.md §4.6's find_byteset.
func FindByteSet(h []byte, set byteset.Set) int {
	if len(h) == 0 {
		return notFound
	}
	if cpu.BestSearchTier(cpu.Capabilities()) == cpu.Serial {
		return findByteSetSerial(h, set)
	}
	return findByteSetNibble(h, set)
}

// RFindByteSet returns the index of the last byte in h that is a member of
// set, or notFound. spec.md §4.6: "Reverse variants use the serial
// implementation in this specification" — forward search gets the
// nibble-decomposition vector tiers, reverse always walks scalar,
// preserving scan-from-end ordering without a second table-driven path to
// keep in lockstep.
func RFindByteSet(h []byte, set byteset.Set) int {
	for i := len(h) - 1; i >= 0; i-- {
		if set.Contains(h[i]) {
			return i
		}
	}
	return notFound
}

func findByteSetSerial(h []byte, set byteset.Set) int {
	for i, c := range h {
		if set.Contains(c) {
			return i
		}
	}
	return notFound
}

// nibbleTables is the AVX2/AVX-512/NEON decomposition spec.md §4.6
// describes: every haystack byte c splits into a high nibble (selecting
// one of 16 table entries) and a low nibble (selecting one of 8 bits
// within that entry, via even/odd halves depending on whether the low
// nibble is below or at/above 8). Built once per Set and reused across an
// entire search, the way a real PSHUFB table would be loaded once into a
// vector register before the scan loop.
type nibbleTables struct {
	even, odd [16]byte
}

func buildNibbleTables(set byteset.Set) nibbleTables {
	var t nibbleTables
	for hi := 0; hi < 16; hi++ {
		var e, o byte
		for j := 0; j < 8; j++ {
			if set.Contains(byte(hi<<4 | j)) {
				e |= 1 << uint(j)
			}
			if set.Contains(byte(hi<<4 | 8 + j)) {
				o |= 1 << uint(j)
			}
		}
		t.even[hi] = e
		t.odd[hi] = o
	}
	return t
}

// contains re-derives membership from the decomposed tables instead of
// testing the set's bitwords directly — algorithmically distinct from
// Set.Contains, but byte-for-byte equivalent to it (this is exactly the
// parity spec.md §8 invariant 11 requires of every backend).
func (t nibbleTables) contains(c byte) bool {
	hi := c >> 4
	lo := c & 0x0F
	var slice byte
	if lo < 8 {
		slice = t.even[hi]
	} else {
		slice = t.odd[hi]
	}
	return slice&(1<<(lo&7)) != 0
}

func findByteSetNibble(h []byte, set byteset.Set) int {
	t := buildNibbleTables(set)
	for i, c := range h {
		if t.contains(c) {
			return i
		}
	}
	return notFound
}
