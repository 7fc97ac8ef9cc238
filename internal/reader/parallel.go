package reader

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/csvquery/blazecsv/internal/engine"
	"github.com/csvquery/blazecsv/internal/fieldref"
	"github.com/csvquery/blazecsv/internal/mmap"
	"github.com/csvquery/blazecsv/internal/policy"
)

// ParallelReader splits a mapped file into newline-aligned chunks and
// scans them concurrently. Error checking is implicitly
// *policy.LineTracker ("basic" level) for every worker, regardless of
// what the caller would otherwise choose — short rows are silently
// skipped per spec §4.5's explicit contract for this surface. Grounded
// on the teacher's Scanner.Scan/processChunk boundary-precompute and
// goroutine fan-out, simplified to drop the teacher's quote-parity
// scan (findSafeRecordBoundary): this format has no quoting, so a
// chunk boundary is just the next newline.
type ParallelReader[N policy.NullChecker] struct {
	source    *mmap.Source
	numCols   int
	delim     byte
	headers   []string
	headerIdx map[string]int
	dataStart int
	workers   int
	null      N
}

// OpenParallel maps path, parses headers identically to Reader, and
// records the worker count (clamped to at least 1; 0 or negative means
// "use runtime.NumCPU()").
func OpenParallel[N policy.NullChecker](path string, numCols int, delim byte, workers int, skipHeader bool, null N) (*ParallelReader[N], error) {
	src, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	if !src.Valid() {
		src.Close()
		return nil, fmt.Errorf("reader: %s: invalid or unmappable file", path)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pr := &ParallelReader[N]{
		source:  src,
		numCols: numCols,
		delim:   delim,
		workers: workers,
		null:    null,
	}

	data := src.Data()
	if skipHeader {
		pr.headers, pr.headerIdx, pr.dataStart = parseHeaderLine(data, delim, numCols)
	} else {
		pr.headers = make([]string, numCols)
		pr.headerIdx = make(map[string]int)
	}

	return pr, nil
}

// Headers returns the parsed header row.
func (pr *ParallelReader[N]) Headers() []string { return pr.headers }

// ColumnIndex looks up a header by name, case-insensitively.
func (pr *ParallelReader[N]) ColumnIndex(name string) (int, bool) {
	idx, ok := pr.headerIdx[strings.ToLower(name)]
	return idx, ok
}

// NullChecker exposes the reader's configured null policy.
func (pr *ParallelReader[N]) NullChecker() N { return pr.null }

// Data returns the mapped byte range fields are views into.
func (pr *ParallelReader[N]) Data() []byte { return pr.source.Data() }

// Close releases the underlying mapping.
func (pr *ParallelReader[N]) Close() error { return pr.source.Close() }

// boundaries computes K+1 offsets into data[base:base+size] such that
// boundaries[i] is the start of worker i's chunk and boundaries[K] is
// base+size. Each interior boundary lands just past the next '\n' at or
// after its target offset, so every chunk holds whole records only.
func boundaries(data []byte, base, size, workers int) []int {
	end := base + size
	b := make([]int, workers+1)
	b[0] = base
	b[workers] = end
	if workers <= 1 {
		return b
	}
	chunk := size / workers
	for i := 1; i < workers; i++ {
		hint := base + i*chunk
		if hint >= end {
			b[i] = end
			continue
		}
		rel := bytes.IndexByte(data[hint:end], '\n')
		if rel == -1 {
			b[i] = end
		} else {
			b[i] = hint + rel + 1
		}
	}
	return b
}

// ForEachParallel scans every chunk concurrently, invoking cb once per
// record with the zero-based index of the worker goroutine that found
// it — callers shard their own accumulation state per worker using this
// index, since cb must tolerate concurrent invocation from multiple
// goroutines. Returns the sum of per-worker record counts; order across
// chunks is not preserved, though within a chunk order is.
func (pr *ParallelReader[N]) ForEachParallel(cb func(workerID int, fields []fieldref.Ref) bool) int {
	data := pr.source.Data()
	size := len(data) - pr.dataStart
	if size <= 0 {
		return 0
	}

	bounds := boundaries(data, pr.dataStart, size, pr.workers)
	counts := make([]int, pr.workers)

	var wg sync.WaitGroup
	for i := 0; i < pr.workers; i++ {
		start, end := bounds[i], bounds[i+1]
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()
			tracker := &policy.LineTracker{}
			n, _, _ := engine.ScanChunk(data, start, end, pr.numCols, pr.delim, 0, tracker, func(fields []fieldref.Ref) bool {
				return cb(workerID, fields)
			})
			counts[workerID] = n
		}(i, start, end)
	}
	wg.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
