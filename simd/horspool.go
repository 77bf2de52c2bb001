package simd

// horspoolTable is the bad-character shift table spec.md §4.7.c builds
// for Boyer-Moore-Horspool: shift[c] gives how far to slide the window
// when its last byte is c. Bytes that don't occur in the needle (besides
// its final byte) get the full needle length, the maximum possible slide.
type horspoolTable [256]int

func buildHorspoolTable(needle []byte) horspoolTable {
	n := len(needle)
	var t horspoolTable
	for i := range t {
		t[i] = n
	}
	for i := 0; i < n-1; i++ {
		t[needle[i]] = n - 1 - i
	}
	return t
}

// findHorspoolRaita runs Boyer-Moore-Horspool with a Raita three-byte
// prefilter (spec.md §4.7.b/c): before paying for a full Equal, reject
// windows whose first/anomaly/last bytes don't match. needle may be of any
// length: the table has one entry per byte value, whatever the needle
// length, and findHorspoolLongNeedle passes needles over 256 bytes whole.
func findHorspoolRaita(h, needle []byte) int {
	n := len(needle)
	table := buildHorspoolTable(needle)
	first, mid, last := raitaOffsets(needle)

	pos := 0
	for pos+n <= len(h) {
		w := h[pos : pos+n]
		if w[last] == needle[last] && w[first] == needle[first] && w[mid] == needle[mid] {
			if Equal(w, needle) {
				return pos
			}
		}
		pos += table[h[pos+n-1]]
	}
	return notFound
}

// findHorspoolLongNeedle handles needles longer than 256 bytes (spec.md
// §4.7's >256 tier). The vectorized tier this mirrors chunks its table
// construction to a 256-byte needle prefix to bound per-iteration
// register/table pressure; the scalar bad-character table here is already
// a fixed 256-entry array regardless of needle length, so that constraint
// doesn't apply and the full needle drives both the table and the
// anomaly-offset selection directly.
func findHorspoolLongNeedle(h, needle []byte) int {
	return findHorspoolRaita(h, needle)
}

// rbuildHorspoolTable builds the reverse-scan bad-character table: shift
// is keyed on the first byte of the window (the byte the reverse scan
// consumes last). Mirrors buildHorspoolTable, but the safe shift for a
// repeated byte is its leftmost (smallest) index ≥1, not its rightmost —
// the forward table's rightmost-occurrence rule would let the scan step
// over a valid match when a needle byte repeats (e.g. needle "aaa": the
// leftmost index must win so the window slides by 1, not 2).
func rbuildHorspoolTable(needle []byte) horspoolTable {
	n := len(needle)
	var t horspoolTable
	for i := range t {
		t[i] = n
	}
	for i := n - 1; i >= 1; i-- {
		t[needle[i]] = i
	}
	return t
}

// rfindHorspoolRaita mirrors findHorspoolRaita, scanning candidate windows
// from the end of h toward the start — spec.md §4.7.e's reverse variant.
func rfindHorspoolRaita(h, needle []byte) int {
	n := len(needle)
	table := rbuildHorspoolTable(needle)
	first, mid, last := raitaOffsets(needle)

	pos := len(h) - n
	for pos >= 0 {
		w := h[pos : pos+n]
		if w[first] == needle[first] && w[last] == needle[last] && w[mid] == needle[mid] {
			if Equal(w, needle) {
				return pos
			}
		}
		pos -= table[h[pos]]
	}
	return notFound
}

// rfindHorspoolLongNeedle mirrors findHorspoolLongNeedle for the reverse
// direction — see its comment for why no 256-byte chunking is needed in
// this portable realization.
func rfindHorspoolLongNeedle(h, needle []byte) int {
	return rfindHorspoolRaita(h, needle)
}
