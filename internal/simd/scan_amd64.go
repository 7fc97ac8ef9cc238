//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// activePath is diagnostic only (see ActivePath in scan.go): the scan
// itself is the portable SWAR routine in scan_swar.go regardless of which
// branch fires here. The teacher's own internal/simd probes cpu.X86 in
// init() to pick between hand-written AVX2/SSE4.2 assembly bodies; this
// repo has no such assembly (see DESIGN.md), so the probe is kept only to
// report what a wide-register path *could* have used.
var activePath = detectPath()

func detectPath() string {
	switch {
	case cpu.X86.HasAVX2:
		return "swar16 (amd64/avx2 host)"
	case cpu.X86.HasSSE42:
		return "swar16 (amd64/sse4.2 host)"
	default:
		return "swar16 (amd64)"
	}
}
