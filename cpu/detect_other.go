//go:build !amd64 && !arm64

package cpu

// detect reports only Serial on architectures this package has no
// introspection for, matching spec.md §9: "on unknown OSes, report only
// serial."
func detect() CapabilitySet {
	return Serial
}
