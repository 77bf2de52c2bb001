package simd

import (
	"github.com/coregx/bytekit/cpu"
	"github.com/coregx/bytekit/internal/swar"
)

// notFound is the "null sentinel" spec.md's pointer-returning contract
// maps to in Go: an index-returning function returns notFound (-1) rather
// than a pointer, which is both idiomatic and matches strings.IndexByte.
const notFound = -1

// FindByte returns the index of the first occurrence of b in h, or
// notFound (-1) if b does not occur in h — spec.md §4.5's find_byte.
func FindByte(h []byte, b byte) int {
	if len(h) == 0 {
		return notFound
	}
	switch cpu.BestSearchTier(cpu.Capabilities()) {
	case cpu.Ice, cpu.Skylake:
		return findByteChunked(h, b, 64)
	case cpu.Haswell:
		return findByteChunked(h, b, 32)
	default:
		return findByteSerial(h, b)
	}
}

// RFindByte returns the index of the last occurrence of b in h, or
// notFound if absent — spec.md §4.5's rfind_byte.
func RFindByte(h []byte, b byte) int {
	if len(h) == 0 {
		return notFound
	}
	switch cpu.BestSearchTier(cpu.Capabilities()) {
	case cpu.Ice, cpu.Skylake:
		return rfindByteChunked(h, b, 64)
	case cpu.Haswell:
		return rfindByteChunked(h, b, 32)
	default:
		return rfindByteSerial(h, b)
	}
}

// findByteSerial is spec.md §4.5's serial-forward tier: broadcast the
// needle byte across a 64-bit word and scan 8 bytes at a time, falling to
// a byte-at-a-time tail.
func findByteSerial(h []byte, b byte) int {
	needle := swar.BroadcastByte(b)
	n := len(h)
	i := 0
	for ; i+8 <= n; i += 8 {
		mask := swar.EqualMask64(swar.Load64(h[i:]), needle)
		if mask != 0 {
			return i + swar.FirstMatchByteIndex(mask)
		}
	}
	for ; i < n; i++ {
		if h[i] == b {
			return i
		}
	}
	return notFound
}

// rfindByteSerial mirrors findByteSerial, walking from the end in 8-byte
// chunks using a leading-zero count instead of trailing — spec.md §4.5's
// serial-reverse tier.
func rfindByteSerial(h []byte, b byte) int {
	needle := swar.BroadcastByte(b)
	n := len(h)
	i := n
	for i >= 8 {
		i -= 8
		mask := swar.EqualMask64(swar.Load64(h[i:]), needle)
		if mask != 0 {
			return i + swar.LastMatchByteIndex(mask)
		}
	}
	for j := i - 1; j >= 0; j-- {
		if h[j] == b {
			return j
		}
	}
	return notFound
}

// findByteChunked realizes the vector tiers of spec.md §4.5 (AVX2's
// 32-byte movemask iteration, AVX-512's 64-byte masked-compare iteration):
// scan width bytes per iteration using the same SWAR word-equality test as
// the serial tier, applied to each 8-byte lane of the chunk, falling back
// to the serial tail helper once fewer than width bytes remain.
func findByteChunked(h []byte, b byte, width int) int {
	needle := swar.BroadcastByte(b)
	n := len(h)
	i := 0
	for ; i+width <= n; i += width {
		for lane := 0; lane < width; lane += 8 {
			mask := swar.EqualMask64(swar.Load64(h[i+lane:]), needle)
			if mask != 0 {
				return i + lane + swar.FirstMatchByteIndex(mask)
			}
		}
	}
	if r := findByteSerial(h[i:], b); r != notFound {
		return i + r
	}
	return notFound
}

func rfindByteChunked(h []byte, b byte, width int) int {
	needle := swar.BroadcastByte(b)
	n := len(h)
	i := n
	for i >= width {
		i -= width
		for lane := width - 8; lane >= 0; lane -= 8 {
			mask := swar.EqualMask64(swar.Load64(h[i+lane:]), needle)
			if mask != 0 {
				return i + lane + swar.LastMatchByteIndex(mask)
			}
		}
	}
	if r := rfindByteSerial(h[:i], b); r != notFound {
		return r
	}
	return notFound
}
