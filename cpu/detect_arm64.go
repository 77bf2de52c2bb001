//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detect reads the AArch64 ID registers via golang.org/x/sys/cpu, which on
// Linux parses ID_AA64ISAR0_EL1/ID_AA64ISAR1_EL1/ID_AA64PFR0_EL1 and on
// Apple platforms falls back to sysctl — exactly the two introspection
// paths spec.md §4.11 names for ARM.
//
// SVE2 is part of the bitfield's vocabulary (spec.md §3) but the detection
// layer available to this package does not expose an SVE2 feature flag, so
// that bit is never set here; see DESIGN.md for this Open Question's
// resolution. A host with genuine SVE2 support still reports SVE.
func detect() CapabilitySet {
	caps := Serial

	if cpu.ARM64.HasASIMD {
		caps |= NEON
	}
	if cpu.ARM64.HasSVE {
		caps |= SVE
	}

	return caps
}
