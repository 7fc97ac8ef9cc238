// Package engine holds the one record-walking loop shared by the
// single-threaded reader and every parallel worker. Grounded on the
// teacher's Scanner.processChunk/parseLineSimd in
// internal/indexer/scanner.go, which the teacher itself calls
// identically from every goroutine spawned by Scan — the same "one
// parser, many callers" shape, generalized from the teacher's
// quote-aware bitmap walk (out of scope here) to the plain
// delimiter/newline walk this format requires.
package engine

import (
	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/policy"
	"github.com/csvquery/blazecsv/internal/simd"
)

// ScanChunk walks data[start:end] one record at a time and invokes cb for
// each row that the tracker's policy admits. It never reads data outside
// [start, end). startLine is the number of lines already counted before
// data[start] (callers that don't track lines may pass 0); when the
// tracker is enabled it is advanced by one for each record walked, so the
// first record is line startLine+1. Blank lines are not counted.
//
// Returns the number of records for which cb was invoked, the cursor just
// past the last record walked, and the line counter after the walk
// (meaningful only when the tracker is enabled).
//
// cb returning false stops the walk early; the count then includes that
// last invocation, per the for_each_until contract.
func ScanChunk(data []byte, start, end, numCols int, delim byte, startLine int64, tracker policy.Tracker, cb func(fields []fieldref.Ref) bool) (count int, nextCursor int, endLine int64) {
	cursor := start
	line := startLine
	fields := make([]fieldref.Ref, numCols)

	for cursor < end {
		switch data[cursor] {
		case '\n':
			cursor++
			continue
		case '\r':
			cursor++
			if cursor < end && data[cursor] == '\n' {
				cursor++
			}
			continue
		}

		if tracker.Enabled() {
			line++
		}

		lineLen := simd.FindNewline(data[cursor:end])
		lineEnd := cursor + lineLen
		effectiveEnd := lineEnd
		if effectiveEnd > cursor && data[effectiveEnd-1] == '\r' {
			effectiveEnd--
		}

		ptr := cursor
		col := 0
		for col < numCols && ptr < effectiveEnd {
			fieldStart := ptr
			ptr += simd.FindFieldEnd(data[ptr:effectiveEnd], delim)
			// A lone '\r' inside the line is ordinary field data: keep
			// scanning past it to the next delimiter.
			for delim != '\r' && ptr < effectiveEnd && data[ptr] == '\r' {
				ptr++
				ptr += simd.FindFieldEnd(data[ptr:effectiveEnd], delim)
			}
			fields[col] = fieldref.Ref{Begin: fieldStart, End: ptr}
			col++
			if ptr < effectiveEnd && data[ptr] == delim {
				ptr++
			}
		}

		if col > 0 && col < numCols && fields[col-1].End < effectiveEnd && data[fields[col-1].End] == delim {
			fields[col] = fieldref.Ref{Begin: ptr, End: ptr}
			col++
		}

		if lineEnd < end {
			cursor = lineEnd + 1
		} else {
			cursor = end
		}

		if tracker.Enabled() && col != numCols {
			tracker.Note(policy.ColumnCountMismatch, line, col)
		} else {
			count++
			if !cb(fields[:numCols]) {
				return count, cursor, line
			}
		}
	}

	return count, cursor, line
}
