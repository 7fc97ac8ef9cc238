// Package policy provides the compile-time configuration bundles for the
// reader: error tracking (off / line / line+column) and null-value
// vocabulary. Both are expressed as Go generic type parameters instantiated
// with marker types: a reader built with tracking disabled holds only a
// pointer to the shared, field-less OffTracker (plus the reader's own line
// counter, which then stays 0).
package policy

// ErrorCode is a small closed set of diagnostics a field parse or record
// scan can produce.
type ErrorCode int

const (
	Ok ErrorCode = iota
	InvalidInteger
	InvalidFloat
	InvalidBool
	InvalidDate
	InvalidDateTime
	NullValue
	OutOfRange
	ColumnCountMismatch
	EndOfFile
	FileOpenError
)

func (c ErrorCode) String() string {
	switch c {
	case Ok:
		return "ok"
	case InvalidInteger:
		return "invalid integer"
	case InvalidFloat:
		return "invalid float"
	case InvalidBool:
		return "invalid bool"
	case InvalidDate:
		return "invalid date"
	case InvalidDateTime:
		return "invalid datetime"
	case NullValue:
		return "null value"
	case OutOfRange:
		return "out of range"
	case ColumnCountMismatch:
		return "column count mismatch"
	case EndOfFile:
		return "end of file"
	case FileOpenError:
		return "file open error"
	default:
		return "unknown error"
	}
}

// Error implements the error interface so a caller can wrap an ErrorCode
// with fmt.Errorf("%w", ...) and test it with errors.Is.
func (c ErrorCode) Error() string { return c.String() }

// ErrorInfo is the (code, line, column) triple reported by a Tracker.
// Line and Column are only meaningful when the tracker that produced this
// info tracks them; otherwise they read zero.
type ErrorInfo struct {
	Code   ErrorCode
	Line   int64
	Column int
}

// Tracker is implemented by pointers to the three error-policy markers.
// Reader is generic over a concrete *Tracker type, but it hands the tracker
// to engine.ScanChunk as a Tracker interface value, so the Enabled() check
// in the scan loop is an interface method call made once per record.
type Tracker interface {
	// Enabled reports whether this tracker records anything at all.
	Enabled() bool
	// TracksColumn reports whether column numbers are recorded in
	// addition to line numbers.
	TracksColumn() bool
	// Note records a diagnostic. Implementations that don't track
	// anything (OffTracker) make this a no-op.
	Note(code ErrorCode, line int64, column int)
	// Last returns the most recently recorded diagnostic (latest-wins).
	Last() ErrorInfo
	// HasError reports whether Last().Code != Ok.
	HasError() bool
}

// OffTracker disables error tracking entirely. It is zero-sized: a
// Reader[*OffTracker, N] stores one pointer word referencing a shared,
// field-less instance and no error info. The Reader's own line counter
// field is still present in this instantiation; it stays 0.
type OffTracker struct{}

func (*OffTracker) Enabled() bool                      { return false }
func (*OffTracker) TracksColumn() bool                 { return false }
func (*OffTracker) Note(ErrorCode, int64, int)         {}
func (*OffTracker) Last() ErrorInfo                    { return ErrorInfo{} }
func (*OffTracker) HasError() bool                     { return false }

// SharedOffTracker is the single shared instance every Turbo-style reader
// points its tracker at; since OffTracker carries no fields there is
// nothing to race on between readers sharing it.
var SharedOffTracker = &OffTracker{}

// LineTracker records the latest error's code and line number, but not
// its column. This is the "basic" preset.
type LineTracker struct {
	last ErrorInfo
}

func (*LineTracker) Enabled() bool      { return true }
func (*LineTracker) TracksColumn() bool { return false }
func (t *LineTracker) Note(code ErrorCode, line int64, _ int) {
	t.last = ErrorInfo{Code: code, Line: line}
}
func (t *LineTracker) Last() ErrorInfo { return t.last }
func (t *LineTracker) HasError() bool  { return t.last.Code != Ok }

// FullTracker records the latest error's code, line, and column. This is
// the "full" preset.
type FullTracker struct {
	last ErrorInfo
}

func (*FullTracker) Enabled() bool      { return true }
func (*FullTracker) TracksColumn() bool { return true }
func (t *FullTracker) Note(code ErrorCode, line int64, column int) {
	t.last = ErrorInfo{Code: code, Line: line, Column: column}
}
func (t *FullTracker) Last() ErrorInfo { return t.last }
func (t *FullTracker) HasError() bool  { return t.last.Code != Ok }
