// Package simd provides the two scanner primitives the record iterator
// builds on: finding the next field terminator and the next line
// terminator in a byte range. Grounded on the teacher's internal/simd
// package (build-tag-dispatched CPU feature probing via
// golang.org/x/sys/cpu, a scalar fallback for platforms without a wide
// path), adapted from the teacher's bitmap-producing Scan/ScanWithSeparator
// to this spec's single-index-returning contract.
package simd

// FindFieldEnd returns the least index i in data such that
// data[i] is delim, '\n', or '\r', or len(data) if no such byte exists.
// It never reads past len(data).
func FindFieldEnd(data []byte, delim byte) int {
	return findFieldEnd(data, delim)
}

// FindNewline returns the least index i in data such that data[i] == '\n',
// or len(data) if no such byte exists. It never reads past len(data).
func FindNewline(data []byte) int {
	return findNewline(data)
}

// ActivePath names the scanning strategy this build will use, purely for
// diagnostics (e.g. a benchmark harness printing what it ran with). It has
// no effect on scan results: per spec §9, performance hints must never
// change observable behavior.
func ActivePath() string {
	return activePath
}
