package textmeasure

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textmeasure package.
var (
	// ErrNilText is returned when a nil text buffer is passed to an
	// operation that requires one.
	ErrNilText = errors.New("textmeasure: nil text buffer")
)

// RangeError reports an input-contract violation: a negative or
// inverted index, a measured range escaping its context span, or an
// output buffer too small for the requested write. It is always
// raised before the shaping engine is invoked and before any output
// buffer is written.
type RangeError struct {
	// Op is the failing operation, e.g. "Advances".
	Op string
	// Reason describes the violated constraint.
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("textmeasure: %s: %s", e.Op, e.Reason)
}

// rangeErr builds a RangeError with a formatted reason.
func rangeErr(op, format string, args ...any) error {
	return &RangeError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
