package simd

import (
	"github.com/coregx/bytekit/cpu"
	"github.com/coregx/bytekit/internal/swar"
)

// Order performs a three-way lexicographic comparison of a and b, treating
// bytes as unsigned, per spec.md §4.4. Strings are compared up to
// min(len(a),len(b)) bytes; on equality of that shared prefix the shorter
// string is Less, matching memcmp-with-length-tiebreak semantics.
func Order(a, b []byte) Ordering {
	switch cpu.BestSearchTier(cpu.Capabilities()) {
	case cpu.Ice, cpu.Skylake:
		return orderSkylake(a, b)
	default:
		// spec.md §4.4/§9: AVX2, NEON and SVE deliberately delegate to
		// serial. Real-world mismatches cluster in the first few bytes,
		// so the SIMD setup cost is never recovered; do not add a
		// vectorized order routine for those tiers.
		return orderSerial(a, b)
	}
}

// orderSerial implements spec.md §4.4's serial tier: a little-endian
// pre-match using byte-reversed 8-byte words (so numeric comparison of the
// reversed word matches lexicographic byte order), falling back to a
// scalar byte pass to pinpoint the first differing byte once a mismatched
// word is found.
func orderSerial(a, b []byte) Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for ; i+8 <= n; i += 8 {
		wa := swar.ByteReverse64(swar.Load64(a[i:]))
		wb := swar.ByteReverse64(swar.Load64(b[i:]))
		if wa != wb {
			return orderTail(a[i:i+8], b[i:i+8])
		}
	}
	if o := orderTail(a[i:n], b[i:n]); o != Equal {
		return o
	}
	return tieBreakByLength(len(a), len(b))
}

// orderTail resolves a (possibly mismatching) shared-length byte range
// with a straightforward scalar scan — used both for order's final
// sub-8-byte remainder and to pinpoint the exact differing byte inside a
// word that orderSerial's fast path already knows differs.
func orderTail(a, b []byte) Ordering {
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return signOf(a[i], b[i])
		}
	}
	return Equal
}

func tieBreakByLength(na, nb int) Ordering {
	switch {
	case na < nb:
		return Less
	case na > nb:
		return Greater
	default:
		return Equal
	}
}

// orderSkylake is the portable stand-in for spec.md §4.4's AVX-512 tier:
// it strides over the shared prefix 64 bytes at a time (the width of a ZMM
// register), resolving each chunk with orderTail's scalar scan, then
// compares the sub-64-byte remainder and finally breaks ties by length.
// There is no head-alignment step and no masked load; chunks start at
// offset 0 and the remainder is a plain length-clamped slice.
func orderSkylake(a, b []byte) Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	const width = 64
	i := 0
	for ; i+width <= n; i += width {
		if o := orderTail(a[i:i+width], b[i:i+width]); o != Equal {
			return o
		}
	}
	if o := orderTail(a[i:n], b[i:n]); o != Equal {
		return o
	}
	return tieBreakByLength(len(a), len(b))
}
