package simd

// raitaOffsets picks the three needle offsets (first, mid, last) the
// Raita prefilter tests before paying for a full verification — spec.md
// §4.7.b's anomaly selection. The goal is to maximize the chance a random
// haystack window fails the three-byte test immediately, so the three
// offsets should be distinct and, for longer needles, avoid anchoring on
// a UTF-8 multi-byte lead byte (which carries fewer distinguishing bits
// than an ASCII or continuation byte).
//
// Degenerate results for very short needles (offsets coinciding) are
// harmless: every caller of this function re-verifies the full needle
// with Equal before accepting a match, so the prefilter only ever affects
// speed, never correctness.
func raitaOffsets(needle []byte) (first, mid, last int) {
	n := len(needle)
	first, mid, last = 0, n/2, n-1
	if n <= 3 {
		return first, mid, last
	}

	// Step 1: if any two offsets coincide, separate them — advance mid
	// rightward until distinct from first (but short of last), then
	// advance last leftward past any remaining collision.
	for mid == first && mid < last-1 {
		mid++
	}
	for (last == first || last == mid) && last > mid {
		last--
	}

	// Step 2 (n > 8): shift first and mid rightward off UTF-8 lead bytes
	// (>= 0xC0), never colliding with the next offset. last is left
	// alone, per spec.md §4.7.b.
	if n > 8 {
		for first+1 < mid && needle[first] >= 0xC0 {
			first++
		}
		for mid+1 < last && needle[mid] >= 0xC0 {
			mid++
		}

		// Step 3: break a tie between an anchor and its right neighbor by
		// preferring whichever byte rarerOf (byte_frequencies.go) ranks
		// rarer — a rarer anchor byte rejects a mismatching window faster.
		// Bytes that are identical carry no information to tie-break on,
		// so only nudge when the neighbor actually differs. A neighbor that
		// is a UTF-8 lead byte is never chosen, so step 2's result holds.
		if first+1 < mid && needle[first] != needle[first+1] && needle[first+1] < 0xC0 && rarerOf(needle[first], needle[first+1]) == needle[first+1] {
			first++
		}
		if mid+1 < last && needle[mid] != needle[mid+1] && needle[mid+1] < 0xC0 && rarerOf(needle[mid], needle[mid+1]) == needle[mid+1] {
			mid++
		}
	}

	return first, mid, last
}
