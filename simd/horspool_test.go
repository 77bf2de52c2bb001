package simd

import (
	"strings"
	"testing"
)

func TestBuildHorspoolTableDefaultsToNeedleLength(t *testing.T) {
	needle := []byte("abcd")
	table := buildHorspoolTable(needle)
	if table['z'] != len(needle) {
		t.Fatalf("table['z'] = %d, want %d (needle length)", table['z'], len(needle))
	}
	if table['d'] != len(needle) {
		t.Fatalf("table['d'] (last byte) = %d, want %d (untouched default)", table['d'], len(needle))
	}
	if table['a'] != 3 {
		t.Fatalf("table['a'] = %d, want 3", table['a'])
	}
}

func TestFindHorspoolRaitaMatchesStrings(t *testing.T) {
	haystack := "she sells seashells by the seashore"
	cases := []string{"sea", "seashells", "shore", "she sells"}
	for _, needle := range cases {
		want := strings.Index(haystack, needle)
		got := findHorspoolRaita([]byte(haystack), []byte(needle))
		if got != want {
			t.Errorf("findHorspoolRaita(_, %q) = %d, want %d", needle, got, want)
		}
	}
}

func TestRFindHorspoolRaitaMatchesStrings(t *testing.T) {
	haystack := "abcabcabcabc"
	needle := "abc"
	want := strings.LastIndex(haystack, needle)
	got := rfindHorspoolRaita([]byte(haystack), []byte(needle))
	if got != want {
		t.Fatalf("rfindHorspoolRaita = %d, want %d", got, want)
	}
}

func TestFindHorspoolRaitaNoMatch(t *testing.T) {
	if got := findHorspoolRaita([]byte("abcdef"), []byte("xyz")); got != notFound {
		t.Fatalf("findHorspoolRaita(no match) = %d, want notFound", got)
	}
}

func TestRFindHorspoolRaitaSkipsPastMismatchingTailWindow(t *testing.T) {
	// The match sits to the left of the scan's starting window, which
	// mismatches on its last byte: exercises the reverse bad-character
	// shift rather than just the happy-path rightmost-window case.
	cases := []struct{ haystack, needle string }{
		{"aaab", "aaa"},
		{"Xaab", "Xaa"},
	}
	for _, c := range cases {
		want := strings.Index(c.haystack, c.needle)
		got := rfindHorspoolRaita([]byte(c.haystack), []byte(c.needle))
		if got != want {
			t.Errorf("rfindHorspoolRaita(%q, %q) = %d, want %d", c.haystack, c.needle, got, want)
		}
	}
}

func TestHorspoolOverlappingMatches(t *testing.T) {
	haystack := "aaaaaa"
	needle := "aaa"
	want := strings.Index(haystack, needle)
	if got := findHorspoolRaita([]byte(haystack), []byte(needle)); got != want {
		t.Fatalf("overlapping findHorspoolRaita = %d, want %d", got, want)
	}
	wantR := strings.LastIndex(haystack, needle)
	if got := rfindHorspoolRaita([]byte(haystack), []byte(needle)); got != wantR {
		t.Fatalf("overlapping rfindHorspoolRaita = %d, want %d", got, wantR)
	}
}
