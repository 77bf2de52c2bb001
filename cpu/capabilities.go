// Package cpu implements the host capability bitfield described by
// spec.md §3/§4.11/§9: a bitfield describing which backend categories are
// executable on the host, determined once at process start and cached
// read-only thereafter (any number of goroutines may call Capabilities
// concurrently without synchronization).
//
// Detection is layered on golang.org/x/sys/cpu, the same dependency the
// teacher's simd package uses for its hasAVX2 flag (simd/memchr_amd64.go),
// generalized here to the full capability set spec.md names.
package cpu

import (
	"strconv"
	"strings"
	"sync"
)

// CapabilitySet is a bitfield of backend categories executable on the host.
type CapabilitySet uint32

// Capability bits. Static dispatch ranks them Ice > Skylake > Haswell >
// SVE2 > SVE > NEON > Serial (spec.md §4.11); BestSearchTier applies that
// order, which is not the declaration order below.
const (
	Serial CapabilitySet = 1 << iota
	Haswell              // AVX2 (Intel Haswell / AMD Excavator and later)
	Skylake              // AVX-512 F+VL+BW+BMI+BMI2 (Intel Skylake-X and later)
	Ice                  // Skylake tier plus VBMI/VBMI2/GFNI/VNNI (Ice Lake and later)
	NEON                 // ARM Advanced SIMD
	SVE                  // ARM Scalable Vector Extension
	SVE2                 // ARM Scalable Vector Extension 2
	Parallel             // caller may safely fan batch work across threads
	GPU                  // a GPU batch backend is linked in (never set by this library; §1 scope)
)

var names = []struct {
	bit  CapabilitySet
	name string
}{
	{Ice, "ice"},
	{Skylake, "skylake"},
	{Haswell, "haswell"},
	{SVE2, "sve2"},
	{SVE, "sve"},
	{NEON, "neon"},
	{Serial, "serial"},
	{Parallel, "parallel"},
	{GPU, "cuda"},
}

// Has reports whether every bit set in want is also set in cs.
func (cs CapabilitySet) Has(want CapabilitySet) bool { return cs&want == want }

// String renders the capability set as a comma-joined list of backend
// names in the order of the names table, e.g. "haswell,serial" —
// capabilities_to_string in spec.md §6.
func (cs CapabilitySet) String() string {
	var parts []string
	for _, n := range names {
		if cs.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "serial"
	}
	return strings.Join(parts, ",")
}

// GoString supports %#v formatting with the numeric value alongside the
// human-readable form, handy in test failure output.
func (cs CapabilitySet) GoString() string {
	return "cpu.CapabilitySet(" + strconv.FormatUint(uint64(cs), 2) + ") /* " + cs.String() + " */"
}

var (
	once   sync.Once
	cached CapabilitySet
)

// Capabilities returns the host's capability bitfield. Detection runs
// exactly once per process (spec.md §9: "the introspector is called
// exactly once per process; cache the result") and the result never
// changes afterward, so callers on any goroutine may read it freely.
func Capabilities() CapabilitySet {
	once.Do(func() { cached = detect() })
	return cached
}

// BestSearchTier returns the single highest-precedence search backend the
// host supports, following the Ice > Skylake > Haswell > SVE2 > SVE > NEON
// > Serial order spec.md §4.11 lays out for static dispatch; dynamic
// dispatch (this package) uses the same order to pick one backend per call.
func BestSearchTier(cs CapabilitySet) CapabilitySet {
	for _, tier := range []CapabilitySet{Ice, Skylake, Haswell, SVE2, SVE, NEON} {
		if cs.Has(tier) {
			return tier
		}
	}
	return Serial
}
