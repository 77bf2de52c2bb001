package simd

// Ordering is the three-valued result of Order: Less, Equal, or Greater,
// mapping to -1, 0, +1 as spec.md §3 requires.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// signOf returns the Ordering corresponding to a signed byte difference,
// computed branchlessly as spec.md §4.4 prescribes: (a>b) - (a<b).
func signOf(a, b byte) Ordering {
	var gt, lt int8
	if a > b {
		gt = 1
	}
	if a < b {
		lt = 1
	}
	return Ordering(gt - lt)
}
