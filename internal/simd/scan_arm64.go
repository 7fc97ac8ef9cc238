//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// activePath mirrors scan_amd64.go's diagnostic probe for the NEON side
// of spec §9's "provide three paths: NEON, SSE2, scalar fallback" — the
// scan itself is still the portable SWAR routine in scan_swar.go.
var activePath = detectPath()

func detectPath() string {
	if cpu.ARM64.HasASIMD {
		return "swar16 (arm64/neon host)"
	}
	return "swar16 (arm64)"
}
