// Package reader provides the single-threaded and parallel record
// iterators built on internal/engine. Grounded on the teacher's
// Scanner type in internal/indexer/scanner.go: header parsing
// (readHeaders), column lookup (GetColumnIndex/GetHeaders), and the
// overall "open once, iterate many times" shape, generalized from the
// teacher's fixed quote-aware CSV behavior to this format's generic,
// policy-parameterized record walk.
package reader

import (
	"fmt"
	"strings"

	"github.com/csvquery/blazecsv/internal/engine"
	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/mmap"
	"github.com/csvquery/blazecsv/internal/policy"
)

// Reader is a single-threaded record iterator over one mapped file,
// parameterized at compile time by its error-tracking policy E and its
// null-vocabulary policy N. Instantiating with *policy.OffTracker and
// policy.NoCheckNull (the Turbo preset) carries no error info, only the
// one pointer to the shared, field-less tracker instance; the line field
// is present in every instantiation and stays 0 when tracking is off.
type Reader[E policy.Tracker, N policy.NullChecker] struct {
	source    *mmap.Source
	numCols   int
	delim     byte
	headers   []string
	headerIdx map[string]int
	dataStart int
	cursor    int
	line      int64
	tracker   E
	null      N
}

// Open maps path, optionally parses a header row, and positions the
// reader at the first data record. tracker must be a non-nil concrete
// Tracker (e.g. policy.SharedOffTracker, or &policy.LineTracker{}); it is
// the caller's own instance, since Reader itself never allocates one.
func Open[E policy.Tracker, N policy.NullChecker](path string, numCols int, delim byte, skipHeader bool, tracker E, null N) (*Reader[E, N], error) {
	src, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	if !src.Valid() {
		src.Close()
		return nil, fmt.Errorf("reader: %s: invalid or unmappable file", path)
	}

	r := &Reader[E, N]{
		source:  src,
		numCols: numCols,
		delim:   delim,
		tracker: tracker,
		null:    null,
	}

	data := src.Data()
	if skipHeader {
		if err := r.readHeaders(data); err != nil {
			src.Close()
			return nil, err
		}
	} else {
		r.dataStart = 0
		r.headers = make([]string, numCols)
		r.headerIdx = make(map[string]int)
	}
	r.cursor = r.dataStart
	return r, nil
}

func (r *Reader[E, N]) readHeaders(data []byte) error {
	r.headers, r.headerIdx, r.dataStart = parseHeaderLine(data, r.delim, r.numCols)
	if r.tracker.Enabled() {
		r.line = 1
	}
	return nil
}

// Headers returns the parsed header row, or a slice of empty strings of
// length numCols if the reader was opened with skipHeader=false.
func (r *Reader[E, N]) Headers() []string { return r.headers }

// ColumnIndex looks up a header by name, case-insensitively.
func (r *Reader[E, N]) ColumnIndex(name string) (int, bool) {
	idx, ok := r.headerIdx[strings.ToLower(name)]
	return idx, ok
}

// ColumnName returns the header at position i, or "" if i is out of
// range.
func (r *Reader[E, N]) ColumnName(i int) string {
	if i < 0 || i >= len(r.headers) {
		return ""
	}
	return r.headers[i]
}

// LastError returns the most recently recorded diagnostic. It reads as
// the zero ErrorInfo if the tracker never recorded one, or if E is
// *policy.OffTracker.
func (r *Reader[E, N]) LastError() policy.ErrorInfo { return r.tracker.Last() }

// HasError reports whether LastError().Code != policy.Ok.
func (r *Reader[E, N]) HasError() bool { return r.tracker.HasError() }

// NullChecker exposes the reader's configured null policy, for callers
// building their own field.IsNull/ValueOr/AsOptional calls.
func (r *Reader[E, N]) NullChecker() N { return r.null }

// Data returns the mapped byte range fields are views into.
func (r *Reader[E, N]) Data() []byte { return r.source.Data() }

// Close releases the underlying mapping. The reader (and every Ref it
// produced) must not be used afterward.
func (r *Reader[E, N]) Close() error { return r.source.Close() }

// ForEach invokes cb once per record from the current cursor to EOF, in
// file order, until cb returns false or records are exhausted. It returns
// the number of records for which cb was invoked.
func (r *Reader[E, N]) ForEach(cb func(fields []fieldref.Ref) bool) int {
	data := r.source.Data()
	count, cursor, line := engine.ScanChunk(data, r.cursor, len(data), r.numCols, r.delim, r.line, r.tracker, cb)
	r.cursor = cursor
	r.line = line
	return count
}

// ForEachUntil is an alias for ForEach: the callback already returns a
// bool to request early stop, so no separate surface is needed beyond
// documenting the cancellation contract at this name.
func (r *Reader[E, N]) ForEachUntil(cb func(fields []fieldref.Ref) bool) int {
	return r.ForEach(cb)
}

// ForEachRaw is ForEach with the (begin, end) pairs unpacked into two
// parallel slices, for callers that would rather not hold fieldref.Ref
// values.
func (r *Reader[E, N]) ForEachRaw(cb func(starts, ends []int) bool) int {
	starts := make([]int, r.numCols)
	ends := make([]int, r.numCols)
	return r.ForEach(func(fields []fieldref.Ref) bool {
		for i, f := range fields {
			starts[i] = f.Begin
			ends[i] = f.End
		}
		return cb(starts, ends)
	})
}
