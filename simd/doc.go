// Package simd implements bytekit's search-and-compare kernels: equality,
// lexicographic order, single-byte search, byte-set search, and substring
// search, each forward and (where applicable) reverse.
//
// Every public function in this package is backed by several tiers named
// after the host capability they target — serial, Haswell (AVX2), Skylake
// and Ice (AVX-512), NEON, SVE — selected at call time via
// github.com/coregx/bytekit/cpu.Capabilities(), the same hasAVX2-gated
// dispatch pattern the teacher package this one is descended from uses in
// memchr_amd64.go. See SPEC_FULL.md's §4 implementation note for why the
// higher tiers here are portable-Go realizations of each tier's algorithm
// rather than hand-written vector assembly.
package simd
