package sicpplus

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// OverflowError is raised when an operation would produce a UBig with
// more than MaxWords words — the hard ceiling on the values this
// package can represent.
type OverflowError struct {
	Op    string // operation that overflowed, e.g. "UBig.Add"
	Words int    // the word count that would have been required
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("sicpplus: %s: result would need %d words, exceeds MaxWords (%d)", e.Op, e.Words, MaxWords)
}

// DomainError is raised when an argument violates an operation's
// precondition: a negative shift, division by zero, subtraction that
// would go negative, a non-finite binary64 input, or a value that does
// not fit the requested narrower type.
type DomainError struct {
	Op  string // operation, e.g. "UBig.Subtract"
	Msg string // short description of the violated precondition
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("sicpplus: %s: %s", e.Op, e.Msg)
}

// ErrUnsupported is returned by Accumulator methods that a given
// backend does not implement.
var ErrUnsupported = errors.New("sicpplus: operation not supported by this accumulator")

func errOverflow(op string, words int) error {
	return pkgerrors.WithStack(&OverflowError{Op: op, Words: words})
}

func errDomain(op, msg string) error {
	return pkgerrors.WithStack(&DomainError{Op: op, Msg: msg})
}

// wrapf adds call-path context (e.g. a Toom-Cook-3 recursive multiply
// naming the sub-product that failed) without losing the underlying
// typed error for errors.As.
func wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, format, args...)
}
