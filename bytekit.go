// Package bytekit is a portable, hardware-aware library of byte-string
// primitives: equality, lexicographic order, substring search (forward
// and reverse), byte-set membership scans, checksums, hashes, and
// pairwise string similarity scoring. It targets large-scale text, log,
// genomic, and columnar workloads where memchr/memcmp/memmem-shaped
// operations on long strings dominate runtime.
//
// Every operation picks the best available backend for the host CPU at
// first use (package cpu) and falls back to a portable serial
// implementation everywhere else; callers never need to branch on
// hardware capability themselves.
package bytekit

import (
	"log"

	"github.com/coregx/bytekit/alloc"
	"github.com/coregx/bytekit/byteset"
	"github.com/coregx/bytekit/checksum"
	"github.com/coregx/bytekit/cpu"
	"github.com/coregx/bytekit/simd"
	"github.com/coregx/bytekit/similarity"
	"github.com/coregx/bytekit/xhash"
)

// Ordering is the three-valued result of Order.
type Ordering = simd.Ordering

const (
	Less    = simd.Less
	Equal   = simd.Equal
	Greater = simd.Greater
)

// ByteSet is a 256-bit byte membership set, used by FindByteSet and
// RFindByteSet.
type ByteSet = byteset.Set

// SubstitutionMatrix is a 256x256 substitution-score table for
// NeedlemanWunsch and SmithWaterman.
type SubstitutionMatrix = similarity.SubstitutionMatrix

// Allocator is the memory collaborator the similarity functions use for
// scratch space; alloc.System and alloc.Arena are the two ready-made
// implementations.
type Allocator = alloc.Allocator

// Equal reports whether a and b are bytewise identical.
func Equal(a, b []byte) bool { return simd.Equal(a, b) }

// Order performs a three-way lexicographic comparison of a and b.
func Order(a, b []byte) Ordering { return simd.Order(a, b) }

// FindByte returns the index of the first occurrence of b in h, or -1.
func FindByte(h []byte, b byte) int { return simd.FindByte(h, b) }

// RFindByte returns the index of the last occurrence of b in h, or -1.
func RFindByte(h []byte, b byte) int { return simd.RFindByte(h, b) }

// Find returns the index of the first occurrence of needle in h, or -1.
// An empty needle never matches.
func Find(h, needle []byte) int { return simd.Find(h, needle) }

// RFind returns the index of the last occurrence of needle in h, or -1.
func RFind(h, needle []byte) int { return simd.RFind(h, needle) }

// FindByteSet returns the index of the first byte in h that belongs to
// set, or -1.
func FindByteSet(h []byte, set ByteSet) int { return simd.FindByteSet(h, set) }

// RFindByteSet returns the index of the last byte in h that belongs to
// set, or -1.
func RFindByteSet(h []byte, set ByteSet) int { return simd.RFindByteSet(h, set) }

// Checksum returns the unsigned 64-bit sum of every byte in data.
func Checksum(data []byte) uint64 { return checksum.Sum(data) }

// Hash returns a deterministic, non-cryptographic 64-bit hash of data.
func Hash(data []byte) uint64 { return xhash.Sum(data) }

// Levenshtein computes the byte-level edit distance between a and b.
func Levenshtein(a, b []byte, allocator Allocator) (int, error) {
	return similarity.Levenshtein(a, b, allocator)
}

// LevenshteinUTF8 computes the rune-level edit distance between a and b,
// returning a similarity.UTF8Error if either operand is not valid UTF-8.
func LevenshteinUTF8(a, b []byte, allocator Allocator) (int, error) {
	return similarity.LevenshteinUTF8(a, b, allocator)
}

// NeedlemanWunsch computes the global alignment score between a and b.
func NeedlemanWunsch(a, b []byte, subs SubstitutionMatrix, gap int64, maximize bool, allocator Allocator) (int64, error) {
	return similarity.NeedlemanWunsch(a, b, subs, gap, maximize, allocator)
}

// SmithWaterman computes the best local alignment score between a and b.
func SmithWaterman(a, b []byte, subs SubstitutionMatrix, gap int64, allocator Allocator) (int64, error) {
	return similarity.SmithWaterman(a, b, subs, gap, allocator)
}

// Capabilities returns the process-wide detected CPU capability bitfield.
func Capabilities() cpu.CapabilitySet { return cpu.Capabilities() }

// CapabilitiesString renders a capability bitfield as a comma-joined list
// of backend names (e.g. "skylake,haswell,serial").
func CapabilitiesString(c cpu.CapabilitySet) string { return c.String() }

// MustLevenshtein is Levenshtein's panic-on-error convenience wrapper, for
// callers that only use alloc.System (which never fails) and would rather
// not thread an error through every call site — matching the teacher's
// MustCompile-style convenience constructors.
func MustLevenshtein(a, b []byte, allocator Allocator) int {
	n, err := Levenshtein(a, b, allocator)
	if err != nil {
		log.Panicf("bytekit: Levenshtein: %v", err)
	}
	return n
}
