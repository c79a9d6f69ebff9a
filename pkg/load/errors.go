package load

import "fmt"

// IOError reports a source file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("load: cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports malformed content: a bad numeral, a missing
// column or field, a malformed endpoint pair, an unknown interval type,
// or a duplicate joint index. Row is the 1-based data row (0 for
// document-level problems) and Field names the offending column/field.
type FormatError struct {
	Path  string
	Row   int
	Field string
	Msg   string
	Err   error
}

func (e *FormatError) Error() string {
	s := fmt.Sprintf("load: %s", e.Path)
	if e.Row > 0 {
		s += fmt.Sprintf(" row %d", e.Row)
	}
	if e.Field != "" {
		s += fmt.Sprintf(" field %q", e.Field)
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error { return e.Err }

// ReferenceError reports an interval whose endpoint references a joint
// index that is not present in the loaded joint set.
type ReferenceError struct {
	Path     string
	Interval int // interval sequence index
	Joint    int // the missing joint index
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("load: %s: interval %d references joint %d, which was not loaded",
		e.Path, e.Interval, e.Joint)
}
