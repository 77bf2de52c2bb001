// Package swar implements the SIMD-Within-A-Register primitives every
// bytekit kernel is built from: unaligned multi-byte loads, byte-wise
// equality folded into a word via the zero-byte-detection trick, and the
// bit-scan/byte-reverse helpers the search and checksum kernels use to turn
// a matched word into a byte offset.
//
// These are the component described as "2.1 Byte vector primitives" — pure
// integer arithmetic, no architecture-specific instructions, safe on both
// big- and little-endian hosts except where individually noted.
package swar

import (
	"encoding/binary"
	"math/bits"
)

// Lo8 and Hi8 are the classic Hacker's-Delight zero-byte-detection masks:
// broadcasting 0x01 and 0x80 across every byte of a 64-bit word.
const (
	Lo8 = 0x0101010101010101
	Hi8 = 0x8080808080808080
)

// Load16 reads 2 bytes from b as a little-endian uint16. b must have at
// least 2 bytes; callers are expected to have checked bounds, matching
// every other span-consuming function in bytekit.
func Load16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

// Load32 reads 4 bytes from b as a little-endian uint32.
func Load32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// Load64 reads 8 bytes from b as a little-endian uint64.
func Load64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// BroadcastByte replicates a single byte value across all eight lanes of a
// 64-bit word, e.g. for building a needle mask to XOR against a haystack
// word.
func BroadcastByte(b byte) uint64 { return uint64(b) * Lo8 }

// HasZeroByte reports, via the standard SWAR trick, whether any of the
// eight bytes packed into v is zero: the result is non-zero exactly when v
// has a zero byte. The set bits are not an exact per-lane map — a borrow
// out of a zero lane can also set the top bit of a higher lane holding
// 0x01. EqualMask64 computes an exact per-lane mask.
func HasZeroByte(v uint64) uint64 {
	return (v - Lo8) &^ v & Hi8
}

// EqualMask64 returns a word in which the top bit of every byte lane where
// a == b is set, and every other bit is zero — the "match indicated by the
// top bit of each byte" construction spec.md §4.1 describes. Adding 0x7F
// to the low seven bits of each lane of a^b sets that lane's top bit iff
// those bits are non-zero and never carries into the next lane, so every
// lane's result is exact.
func EqualMask64(a, b uint64) uint64 {
	const lo7 = 0x7F7F7F7F7F7F7F7F
	x := a ^ b
	return ^((x&lo7)+lo7 | x | lo7)
}

// FirstMatchByteIndex returns the index, in [0,8), of the lowest-addressed
// set lane in a mask produced by EqualMask64/HasZeroByte, assuming
// little-endian lane order.
func FirstMatchByteIndex(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// LastMatchByteIndex returns the index, in [0,8), of the highest-addressed
// set lane in a mask produced by EqualMask64/HasZeroByte.
func LastMatchByteIndex(mask uint64) int {
	return 7 - bits.LeadingZeros64(mask)/8
}

// ByteReverse32 reverses the byte order of a 32-bit word.
func ByteReverse32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// ByteReverse64 reverses the byte order of a 64-bit word.
func ByteReverse64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// CountTrailingZeros32/64 and CountLeadingZeros32/64 and PopCount32/64 are
// thin re-exports of math/bits kept here so every kernel imports one
// primitives package instead of reaching into math/bits directly — this is
// what spec.md §4.1 calls out as a distinct responsibility ("bit-scan
// (ctz/clz/popcount)") even though on this host they are a pass-through.
func CountTrailingZeros32(v uint32) int { return bits.TrailingZeros32(v) }
func CountTrailingZeros64(v uint64) int { return bits.TrailingZeros64(v) }
func CountLeadingZeros32(v uint32) int  { return bits.LeadingZeros32(v) }
func CountLeadingZeros64(v uint64) int  { return bits.LeadingZeros64(v) }
func PopCount32(v uint32) int           { return bits.OnesCount32(v) }
func PopCount64(v uint64) int           { return bits.OnesCount64(v) }

// LaneEqualN reports whether the low n bytes (n in [1,8]) of words x and y
// are all equal — the per-lane n-byte equality test used by the SWAR
// multi-byte needle scan (§4.7.a). It masks both words to their low n*8
// bits before comparing, so callers may pass words with garbage in the
// unused high lanes.
func LaneEqualN(x, y uint64, n int) bool {
	if n >= 8 {
		return x == y
	}
	mask := uint64(1)<<(uint(n)*8) - 1
	return x&mask == y&mask
}
