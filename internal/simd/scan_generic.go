//go:build !amd64 && !arm64

package simd

// activePath on architectures with no CPU-feature probe wired up: the
// scan is always the portable SWAR routine in scan_swar.go.
var activePath = "swar16 (generic)"
