package simd

// ByteFrequencies ranks every possible byte value by how often it appears
// in typical text/source/log payloads: lower rank = rarer byte = a better
// anchor for a prefilter, since a rare byte rejects a candidate window
// faster. This is the same role the teacher's simd.ByteFrequencies table
// plays for its Memmem rare-byte heuristic (simd/byte_frequencies.go);
// this table is (re)built from category rules instead of a hand-typed
// literal array, but encodes the same shape: control bytes and non-ASCII
// bytes are rare, vowels/space/common punctuation are common.
var ByteFrequencies = buildByteFrequencies()

func buildByteFrequencies() [256]byte {
	var f [256]byte

	// Default: everything starts as moderately rare. Bytes >= 0x80 (UTF-8
	// continuation/lead bytes, raw binary) stay here — they're rare in
	// text workloads and common only in binary ones, so treating them as
	// a uniform low rank is the conservative choice.
	for i := range f {
		f[i] = 10
	}

	// Control characters: rare except the whitespace-ish ones.
	for i := 0; i < 0x20; i++ {
		f[i] = 2
	}
	f['\t'] = 40
	f['\n'] = 60
	f['\r'] = 40

	// Printable ASCII punctuation: a middling, varied rank.
	for _, b := range []byte(" !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~") {
		f[b] = 70
	}
	f[' '] = 255
	f[','] = 200
	f['.'] = 210
	f['"'] = 140
	f['\''] = 160
	f['_'] = 110
	f['/'] = 100
	f['@'] = 25 // rare enough to be a good anchor (emails, decorators)

	// Digits: common in logs/IDs, uniformly mid-high.
	for b := byte('0'); b <= '9'; b++ {
		f[b] = 150
	}

	// Uppercase letters: moderate, following rough English letter
	// frequency (vowels and common consonants rank higher).
	upperRank := map[byte]byte{
		'A': 120, 'B': 80, 'C': 90, 'D': 85, 'E': 130, 'F': 75, 'G': 70,
		'H': 80, 'I': 115, 'J': 30, 'K': 35, 'L': 90, 'M': 85, 'N': 100,
		'O': 105, 'P': 80, 'Q': 15, 'R': 100, 'S': 110, 'T': 115, 'U': 70,
		'V': 45, 'W': 55, 'X': 20, 'Y': 50, 'Z': 10,
	}
	for b, r := range upperRank {
		f[b] = r
	}

	// Lowercase letters: the dominant class in prose/source text,
	// following rough English letter frequency (e/a/i/o/t/n/s/r highest).
	lowerRank := map[byte]byte{
		'a': 225, 'b': 140, 'c': 170, 'd': 165, 'e': 245, 'f': 135, 'g': 130,
		'h': 150, 'i': 200, 'j': 25, 'k': 65, 'l': 175, 'm': 155, 'n': 195,
		'o': 205, 'p': 145, 'q': 15, 'r': 195, 's': 200, 't': 215, 'u': 150,
		'v': 75, 'w': 95, 'x': 45, 'y': 120, 'z': 20,
	}
	for b, r := range lowerRank {
		f[b] = r
	}

	return f
}

// ByteRank returns the frequency rank of b; lower means rarer.
func ByteRank(b byte) byte { return ByteFrequencies[b] }

// rarerOf returns whichever of a, b has the lower frequency rank, used as
// a tie-break when the Raita anomaly selector (raita.go) has more than one
// equally valid candidate offset to shift toward.
func rarerOf(a, b byte) byte {
	if ByteRank(a) <= ByteRank(b) {
		return a
	}
	return b
}
