// Package cuda adapts a foreign status-code API into Go errors. The status
// codes and their descriptions are owned by an external runtime; this
// package only carries them across the boundary.
package cuda

import "fmt"

// Result is an opaque status code whose meanings are supplied by the
// runtime that produced it.
type Result int

// Success is the only Result that Check treats as non-failing.
const Success Result = 0

// DescribeFunc maps a Result to the runtime's human-readable message for
// it.
type DescribeFunc func(Result) string

// Error carries a failing Result. The message is resolved by calling the
// describe function each time Error is invoked rather than when the value
// is created, mirroring the runtime's own lazy error-string lookup.
type Error struct {
	code     Result
	describe DescribeFunc
}

// NewError wraps code in an Error that resolves its message through
// describe. A nil describe falls back to a numeric rendering.
func NewError(code Result, describe DescribeFunc) *Error {
	return &Error{code: code, describe: describe}
}

// Code returns the status code the error carries.
func (e *Error) Code() Result { return e.code }

func (e *Error) Error() string {
	if e.describe == nil {
		return fmt.Sprintf("cuda: status %d", int(e.code))
	}
	return e.describe(e.code)
}

// Check returns nil when code is Success and an *Error carrying code
// otherwise.
func Check(code Result, describe DescribeFunc) error {
	if code == Success {
		return nil
	}
	return NewError(code, describe)
}
