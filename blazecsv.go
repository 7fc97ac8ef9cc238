// Package blazecsv is a memory-mapped, zero-copy reader for
// comma/tab-separated files. It opens a file once, maps it read-only,
// and hands back field references that borrow directly from the
// mapping — no per-field allocation, no intermediate []string rows. The
// reader never writes; schema (column count and meaning) is supplied
// by the caller, not inferred.
//
// Three compile-time presets trade safety for speed:
//
//	Turbo    no error tracking, no null detection — fastest, caller's
//	         own responsibility to validate.
//	Checked  line-level error tracking, the Standard null vocabulary.
//	Safe     line+column error tracking, the Lenient null vocabulary.
//
// OpenParallel splits a file across goroutines for throughput on
// multi-core machines; it always runs with line-level error tracking
// and silently skips short rows, regardless of preset.
package blazecsv

import (
	"github.com/csvquery/blazecsv/internal/policy"
	"github.com/csvquery/blazecsv/internal/reader"
)

// TurboReader is the fastest preset: no error tracking, no null
// detection. Short rows are accepted silently with stale trailing field
// slots (see DESIGN.md).
type TurboReader = reader.Reader[*policy.OffTracker, policy.NoCheckNull]

// CheckedReader tracks the line of the most recent column-count
// mismatch and recognizes the Standard null vocabulary (empty, NA
// family).
type CheckedReader = reader.Reader[*policy.LineTracker, policy.StandardNull]

// SafeReader tracks line and column of the most recent error and
// recognizes the Lenient null vocabulary (all five families).
type SafeReader = reader.Reader[*policy.FullTracker, policy.LenientNull]

// OpenTurbo opens path for the fastest, unchecked reading path.
func OpenTurbo(path string, numCols int, delim byte, skipHeader bool) (*TurboReader, error) {
	return reader.Open[*policy.OffTracker, policy.NoCheckNull](path, numCols, delim, skipHeader, policy.SharedOffTracker, policy.NoCheckNull{})
}

// OpenTurboTSV is OpenTurbo with the delimiter fixed to tab.
func OpenTurboTSV(path string, numCols int, skipHeader bool) (*TurboReader, error) {
	return OpenTurbo(path, numCols, '\t', skipHeader)
}

// OpenChecked opens path with line-level error tracking and the
// Standard null vocabulary.
func OpenChecked(path string, numCols int, delim byte, skipHeader bool) (*CheckedReader, error) {
	return reader.Open[*policy.LineTracker, policy.StandardNull](path, numCols, delim, skipHeader, &policy.LineTracker{}, policy.StandardNull{})
}

// OpenCheckedTSV is OpenChecked with the delimiter fixed to tab.
func OpenCheckedTSV(path string, numCols int, skipHeader bool) (*CheckedReader, error) {
	return OpenChecked(path, numCols, '\t', skipHeader)
}

// OpenSafe opens path with line+column error tracking and the Lenient
// null vocabulary.
func OpenSafe(path string, numCols int, delim byte, skipHeader bool) (*SafeReader, error) {
	return reader.Open[*policy.FullTracker, policy.LenientNull](path, numCols, delim, skipHeader, &policy.FullTracker{}, policy.LenientNull{})
}

// OpenSafeTSV is OpenSafe with the delimiter fixed to tab.
func OpenSafeTSV(path string, numCols int, skipHeader bool) (*SafeReader, error) {
	return OpenSafe(path, numCols, '\t', skipHeader)
}

// OpenParallel opens path for concurrent scanning across workers
// goroutines (0 or negative means runtime.NumCPU()), with the given
// null-vocabulary policy N. Error checking is always line-level
// regardless of N, per spec §4.5.
func OpenParallel[N policy.NullChecker](path string, numCols int, delim byte, workers int, skipHeader bool, null N) (*reader.ParallelReader[N], error) {
	return reader.OpenParallel[N](path, numCols, delim, workers, skipHeader, null)
}
