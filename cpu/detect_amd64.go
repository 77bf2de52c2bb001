//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detect reads CPUID leaves 1 and 7 via golang.org/x/sys/cpu — the same
// introspection spec.md §4.11 describes ("EBX for AVX2, AVX-512F/BW/VL
// bits; ECX for VBMI/VBMI2/VAES") — and folds the bits into the three x86
// tiers the dispatcher distinguishes: Haswell (AVX2), Skylake (AVX-512
// foundation + VL + BW + the BMI extensions), and Ice (Skylake tier plus
// VBMI/VBMI2/GFNI/VNNI).
func detect() CapabilitySet {
	caps := Serial

	if cpu.X86.HasAVX2 {
		caps |= Haswell
	}

	skylake := cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512BW &&
		cpu.X86.HasBMI1 && cpu.X86.HasBMI2
	if skylake {
		caps |= Skylake

		ice := cpu.X86.HasAVX512VBMI && cpu.X86.HasAVX512VBMI2 &&
			cpu.X86.HasAVX512GFNI && cpu.X86.HasAVX512VNNI
		if ice {
			caps |= Ice
		}
	}

	return caps
}
