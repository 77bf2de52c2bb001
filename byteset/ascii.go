package byteset

// ASCIIDigits returns the byte-set {'0'..'9'} — the §8 end-to-end scenario
// 3 example set.
func ASCIIDigits() Set {
	var s Set
	s.AddRange('0', '9')
	return s
}

// ASCIIWhitespace returns the byte-set of ASCII whitespace: space, tab,
// newline, carriage return, vertical tab, form feed.
func ASCIIWhitespace() Set {
	var s Set
	s.AddString(" \t\n\r\v\f")
	return s
}

// ASCIIHex returns the byte-set of hexadecimal digit characters,
// '0'-'9', 'a'-'f', 'A'-'F'.
func ASCIIHex() Set {
	var s Set
	s.AddRange('0', '9')
	s.AddRange('a', 'f')
	s.AddRange('A', 'F')
	return s
}

// ASCIINucleotideIUPAC returns the byte-set of IUPAC nucleotide ambiguity
// codes (upper and lower case): A, C, G, T, U, R, Y, S, W, K, M, B, D, H,
// V, N. spec.md §1 names genomic workloads as a target use case for the
// search kernels; this constructor is the byte-set-shaped hook for that
// use case — a caller scanning a FASTA/FASTQ payload for the first
// ambiguous base, for instance, passes this set straight to
// simd.FindByteSet.
func ASCIINucleotideIUPAC() Set {
	var s Set
	s.AddString("ACGTURYSWKMBDHVN")
	s.AddString("acgturyswkmbdhvn")
	return s
}
