package similarity

import (
	"github.com/coregx/bytekit/alloc"
	"github.com/coregx/bytekit/runeutil"
)

// normalizeBytes returns a, b reordered so the first return value is the
// one whose length is <= the second's — spec.md §4.10's "swap arguments so
// that |shorter| <= |longer|".
func normalizeBytes(a, b []byte) (shorter, longer []byte) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}

func normalizeRunes(a, b []rune) (shorter, longer []rune) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}

func byteEqualCost[T Cell](x, y byte) T {
	if x == y {
		return 0
	}
	return 1
}

func runeEqualCost[T Cell](x, y rune) T {
	if x == y {
		return 0
	}
	return 1
}

// Levenshtein computes the edit distance between a and b: the minimum
// number of single-byte insertions, deletions, and substitutions needed
// to turn one into the other (spec.md §4.10, uniform cost 1 for gap and
// substitution).
func Levenshtein(a, b []byte, allocator alloc.Allocator) (int, error) {
	shorter, longer := normalizeBytes(a, b)
	if cellWidthFor(len(longer)) <= 2 {
		v, err := runEngine[int32](shorter, longer, 1, byteEqualCost[int32], min2[int32], false, allocator)
		return int(v), err
	}
	v, err := runEngine[int64](shorter, longer, 1, byteEqualCost[int64], min2[int64], false, allocator)
	return int(v), err
}

// LevenshteinUTF8 computes the edit distance between a and b treating
// each operand as a sequence of Unicode code points rather than raw
// bytes, so a multi-byte rune counts as one edit unit instead of several
// (spec.md §4.10's UTF-32 variant). Returns UTF8Error if either operand
// is not valid UTF-8.
func LevenshteinUTF8(a, b []byte, allocator alloc.Allocator) (int, error) {
	if runeutil.IsASCII(a) && runeutil.IsASCII(b) {
		return Levenshtein(a, b, allocator)
	}

	ra, ok := runeutil.DecodeToRunes(a)
	if !ok {
		return 0, UTF8Error{Operand: "a"}
	}
	rb, ok := runeutil.DecodeToRunes(b)
	if !ok {
		return 0, UTF8Error{Operand: "b"}
	}

	shorter, longer := normalizeRunes(ra, rb)
	if cellWidthFor(len(longer)) <= 2 {
		v, err := runEngine[int32](shorter, longer, 1, runeEqualCost[int32], min2[int32], false, allocator)
		return int(v), err
	}
	v, err := runEngine[int64](shorter, longer, 1, runeEqualCost[int64], min2[int64], false, allocator)
	return int(v), err
}

// SubstitutionMatrix is a 256x256 lookup table of substitution scores
// between byte values, spec.md §4.10's `subs[256*256]` parameter to
// needleman_wunsch.
type SubstitutionMatrix = *[256][256]int64

// NeedlemanWunsch computes the global alignment score between a and b
// using subs for substitution costs and gap for insertion/deletion cost.
// If maximize is true the engine picks the highest-scoring path at each
// cell (the typical bioinformatics convention, subs holding similarity
// scores and gap a negative penalty); if false it minimizes (subs and
// gap holding costs, as for Levenshtein with an arbitrary cost matrix).
func NeedlemanWunsch(a, b []byte, subs SubstitutionMatrix, gap int64, maximize bool, allocator alloc.Allocator) (int64, error) {
	shorter, longer := normalizeBytes(a, b)
	sub := func(x, y byte) int64 { return subs[x][y] }
	better := min2[int64]
	if maximize {
		better = max2[int64]
	}
	return runEngine[int64](shorter, longer, gap, sub, better, false, allocator)
}

// SmithWaterman computes the best local alignment score between a and b
// — spec.md §4.10's local-alignment variant: cells never go below zero,
// and the result is the highest score seen anywhere in the DP wavefront
// rather than the bottom-right terminal cell.
func SmithWaterman(a, b []byte, subs SubstitutionMatrix, gap int64, allocator alloc.Allocator) (int64, error) {
	shorter, longer := normalizeBytes(a, b)
	sub := func(x, y byte) int64 { return subs[x][y] }
	return runEngine[int64](shorter, longer, gap, sub, max2[int64], true, allocator)
}
