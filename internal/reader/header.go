package reader

import (
	"bytes"
	"strings"
)

// parseHeaderLine splits data's first line into header names using the
// same field rule as data rows (no quoting), bounded/padded to exactly
// numCols entries — mirroring engine.ScanChunk's own column-bound loop
// for data rows, per spec §4.4 ("split into up to N fields") and §6
// ("if the header has fewer than N fields, remaining header slots are
// empty slices"). Extra header fields beyond numCols are dropped, short
// header rows are padded with "". Also reports where the data rows
// begin. Shared by Reader and ParallelReader so header parsing stays
// identical between the single-threaded and parallel surfaces.
func parseHeaderLine(data []byte, delim byte, numCols int) (headers []string, headerIdx map[string]int, dataStart int) {
	idx := bytes.IndexByte(data, '\n')
	line := data
	if idx >= 0 {
		line = data[:idx]
		dataStart = idx + 1
	} else {
		dataStart = len(data)
	}
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	parts := bytes.Split(line, []byte{delim})
	headers = make([]string, numCols)
	headerIdx = make(map[string]int, numCols)
	for i := 0; i < numCols; i++ {
		if i >= len(parts) {
			continue
		}
		name := string(parts[i])
		headers[i] = name
		headerIdx[strings.ToLower(name)] = i
	}
	return headers, headerIdx, dataStart
}
