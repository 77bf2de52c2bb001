// Package similarity implements the anti-diagonal wavefront dynamic
// programming engine spec.md §4.10 describes as
// score_diagonally(a, b, gap_cost, substitution_cost, alloc): Levenshtein
// edit distance, Needleman-Wunsch global alignment, and Smith-Waterman
// local alignment, all sharing one generic core parametrized on the cell
// width the data actually needs.
package similarity

import (
	"unsafe"

	"github.com/coregx/bytekit/alloc"
	"github.com/coregx/bytekit/internal/conv"
)

// Cell is the set of integer widths the DP engine is monomorphized over.
// spec.md §4.10 calls for the narrowest *unsigned* width able to hold
// max(S,L) for the Levenshtein case; this engine widens that to signed
// types so the same generic core also carries Needleman-Wunsch's
// caller-supplied substitution scores, which may be negative (spec.md §6
// types needleman_wunsch's result as "signed", unlike the other, always
// non-negative distance/search contracts) — see DESIGN.md.
type Cell interface {
	~int32 | ~int64
}

// combine picks the "better" of two candidate cell values: min for every
// minimizing use (Levenshtein, a minimizing Needleman-Wunsch), max for a
// maximizing one. Local (Smith-Waterman) alignment always uses max,
// regardless of what the caller passed for the global case.
type combine[T Cell] func(a, b T) T

func min2[T Cell](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max2[T Cell](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// runEngine computes score_diagonally over two already-length-ordered
// operand spans (shorter must not be longer than longer). sub computes
// the substitution cost between one element of shorter and one of
// longer, in that argument order, regardless of which of the caller's
// original two operands ended up "shorter" after normalization.
//
// The DP recurrence is the standard edit-distance/alignment recurrence
// (diagonal = substitution, up/left = gap), organized into waves along
// anti-diagonals k = i+j so that only three O(|shorter|) buffers are
// live at once instead of the full |shorter|×|longer| matrix — spec.md
// §4.10's "previous, current, next" rotation. Each diagonal's valid row
// range [max(0,k-n), min(m,k)] replaces spec.md's separate phase A/B/C
// case split with one formula; the phases describe the same recurrence,
// just organized for a fixed-width vector register.
func runEngine[T Cell, A comparable](shorter, longer []A, gapCost T, sub func(A, A) T, better combine[T], local bool, allocator alloc.Allocator) (T, error) {
	m, n := len(shorter), len(longer)
	s := m + 1

	var zero T
	scratchBytes := 3 * s * int(unsafe.Sizeof(zero))
	scratch := allocator.Allocate(scratchBytes)
	if scratch == nil {
		return 0, AllocError{}
	}
	defer allocator.Free(scratch)

	previous := make([]T, s)
	current := make([]T, s)
	next := make([]T, s)

	var runningMax T

	for k := 1; k <= m+n; k++ {
		lo := 0
		if k > n {
			lo = k - n
		}
		hi := m
		if k < hi {
			hi = k
		}

		for i := lo; i <= hi; i++ {
			j := k - i
			var val T
			switch {
			case local:
				if i == 0 || j == 0 {
					val = 0
				} else {
					diag := previous[i-1] + sub(shorter[i-1], longer[j-1])
					up := current[i-1] + gapCost
					left := current[i] + gapCost
					val = max2(diag, max2(up, left))
					val = max2(val, 0)
				}
				runningMax = max2(runningMax, val)
			case i == 0:
				val = T(j) * gapCost
			case j == 0:
				val = T(i) * gapCost
			default:
				diag := previous[i-1] + sub(shorter[i-1], longer[j-1])
				up := current[i-1] + gapCost
				left := current[i] + gapCost
				val = better(diag, better(up, left))
			}
			next[i] = val
		}

		previous, current, next = current, next, previous
	}

	if local {
		return runningMax, nil
	}
	return current[m], nil
}

// cellWidthFor returns the Cell instantiation width (1 or 2 -> int32, 8
// -> int64) for operands whose longer span has the given length,
// matching internal/conv.CellWidth's narrowest-type selection rule.
func cellWidthFor(maxLen int) int {
	return conv.CellWidth(maxLen)
}
