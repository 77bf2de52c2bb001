// Package byteset implements the 256-bit byte membership set from spec.md
// §3/§4.2: a constant-time, branch-free way to ask "is this byte one of a
// fixed collection of 256 possible values", viewable as four 64-bit words.
//
// It is grounded on the same shape the teacher's prefilter.DigitPrefilter
// (prefilter/digit.go) exists to special-case — "patterns that must start
// with an ASCII digit" — generalized from one hard-coded class to an
// arbitrary caller-built set.
package byteset

// Set is a 256-bit membership set over the 256 possible byte values.
// The zero value is the empty set.
type Set [4]uint64

// Empty returns a new, empty Set. Provided for parity with spec.md's
// "initialize-empty" operation; the zero value already satisfies it.
func Empty() Set { return Set{} }

// ASCII returns a Set containing every byte in [0,128) — spec.md's
// "initialize-ASCII" operation, which sets the lower two 64-bit words to
// all-ones.
func ASCII() Set {
	return Set{^uint64(0), ^uint64(0), 0, 0}
}

// Add inserts b into the set. Idempotent: adding an already-present byte
// is a no-op.
func (s *Set) Add(b byte) {
	s[b/64] |= 1 << (uint(b) % 64)
}

// AddRange inserts every byte in [lo, hi] (inclusive) into the set.
func (s *Set) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// AddString inserts every byte of str into the set.
func (s *Set) AddString(str string) {
	for i := 0; i < len(str); i++ {
		s.Add(str[i])
	}
}

// Contains reports whether b is a member of the set. Bytes are treated as
// unsigned, per spec.md §3's invariant.
func (s Set) Contains(b byte) bool {
	return s[b/64]&(1<<(uint(b)%64)) != 0
}

// Invert returns the complement of s: every byte not in s, and none that
// was.
func (s Set) Invert() Set {
	return Set{^s[0], ^s[1], ^s[2], ^s[3]}
}

// Words returns the four 64-bit words backing the set, in ascending byte
// order (Words()[0] covers bytes [0,64), ..., Words()[3] covers [192,256)).
func (s Set) Words() [4]uint64 { return s }

// Count returns the number of bytes currently in the set.
func (s Set) Count() int {
	n := 0
	for _, w := range s {
		for w != 0 {
			w &= w - 1
			n++
		}
	}
	return n
}
