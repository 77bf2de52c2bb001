package simd

import "github.com/coregx/bytekit/internal/swar"

// Find returns the index of the first occurrence of needle in h, or
// notFound (-1) if needle does not occur. An empty needle never matches
// (spec.md §4.7's documented edge case for find(h, n, "", 0): it returns
// null rather than 0, unlike strings.Index's "empty string matches
// everywhere" convention).
//
// The backend is chosen by needle length, mirroring spec.md §4.7's
// dispatch table: single bytes delegate to FindByte; 2-8 byte needles use
// a SWAR multi-byte scan (exact for 2-4 bytes, a 4-byte prefilter for
// 5-8); everything longer uses Boyer-Moore-Horspool with a Raita
// three-byte prefilter.
func Find(h, needle []byte) int {
	n := len(needle)
	if n == 0 || len(h) < n {
		return notFound
	}
	switch {
	case n == 1:
		return FindByte(h, needle[0])
	case n <= 4:
		return findSWARMulti(h, needle)
	case n <= 8:
		return findSWARPrefilter4(h, needle)
	default:
		return findHorspoolLongNeedle(h, needle)
	}
}

// RFind returns the index of the last occurrence of needle in h, or
// notFound if absent. Unlike Find, every needle length above 1 uses
// Horspool — spec.md §4.7's reverse column has no short-needle SWAR tier,
// since the asymmetric bad-character table already does well on short
// reverse scans without a separate code path to keep in parity.
func RFind(h, needle []byte) int {
	n := len(needle)
	if n == 0 || len(h) < n {
		return notFound
	}
	if n == 1 {
		return RFindByte(h, needle[0])
	}
	return rfindHorspoolLongNeedle(h, needle)
}

// maskN returns a mask selecting the low 8*n bits, for n in [1,8].
func maskN(n int) uint64 {
	if n >= 8 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(8*n) - 1
}

// loadMasked reads the first n bytes of b (n <= 8) as a little-endian
// word, matching swar.Load64's byte ordering so it can be compared
// directly against a masked window word.
func loadMasked(b []byte, n int) uint64 {
	var w uint64
	for i := n - 1; i >= 0; i-- {
		w = w<<8 | uint64(b[i])
	}
	return w
}

// findSWARMulti implements spec.md §4.7.a: needles of 2-4 bytes are
// compared against every candidate position using 64-bit word equality
// instead of a byte-by-byte loop. One 8-byte load covers 8-n+1 candidate
// positions at once (their overlapping windows are all views of the same
// loaded word, shifted and masked), so a single load does the work of
// several scalar comparisons.
func findSWARMulti(h, needle []byte) int {
	n := len(needle)
	needleWord := loadMasked(needle, n)
	mask := maskN(n)
	step := 8 - n + 1

	i := 0
	for i+8 <= len(h) {
		word := swar.Load64(h[i:])
		for k := 0; k < step; k++ {
			if (word>>uint(8*k))&mask == needleWord {
				return i + k
			}
		}
		i += step
	}
	for ; i+n <= len(h); i++ {
		if Equal(h[i:i+n], needle) {
			return i
		}
	}
	return notFound
}

// findSWARPrefilter4 implements spec.md §4.7's 5-8 byte tier: the
// needle's first 4 bytes act as a cheap SWAR prefilter (findSWARMulti
// over just the prefix), and every prefilter hit is verified against the
// full needle with Equal before being accepted.
func findSWARPrefilter4(h, needle []byte) int {
	n := len(needle)
	prefix := needle[:4]

	base := 0
	for {
		window := h[base:]
		rel := findSWARMulti(window, prefix)
		if rel == notFound {
			return notFound
		}
		cand := base + rel
		if cand+n > len(h) {
			return notFound
		}
		if Equal(h[cand:cand+n], needle) {
			return cand
		}
		base = cand + 1
	}
}
