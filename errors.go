// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"errors"
	"fmt"
)

// Resolution errors. Every failure is detected from shapes alone, before any
// tuple element is read; match with errors.Is.
var (
	// ErrShapeMismatch reports lists of unequal length, or a container kind
	// that cannot hold the requested number of elements.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrRange reports a negative or inverted integer range.
	ErrRange = errors.New("malformed range")

	// ErrArity reports a meta-function called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrDescriptor reports a descriptor of the wrong class, e.g. a Type
	// where a Constant or List is required.
	ErrDescriptor = errors.New("unexpected descriptor")

	// ErrMovedTwice reports a [Moved] source consumed a second time.
	ErrMovedTwice = errors.New("moved tuple consumed twice")
)

// ResolveError carries the failing operation alongside the sentinel cause.
type ResolveError struct {
	Op     string
	Err    error
	Detail string
}

func (e *ResolveError) Error() string {
	if e.Detail == "" {
		return "mp: " + e.Op + ": " + e.Err.Error()
	}
	return "mp: " + e.Op + ": " + e.Err.Error() + ": " + e.Detail
}

func (e *ResolveError) Unwrap() error { return e.Err }

func resolveErr(op string, err error, format string, args ...any) error {
	return &ResolveError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// wrapOp prefixes err with an enclosing op, keeping its sentinel.
func wrapOp(op string, err error) error {
	var re *ResolveError
	if errors.As(err, &re) {
		detail := re.Op
		if re.Detail != "" {
			detail += ": " + re.Detail
		}
		return &ResolveError{Op: op, Err: re.Err, Detail: detail}
	}
	return &ResolveError{Op: op, Err: err}
}

// wrapAt annotates an error raised while evaluating element i of op.
// A nested ResolveError keeps its own sentinel; the outer op is prefixed.
func wrapAt(op string, i int, err error) error {
	var re *ResolveError
	if errors.As(err, &re) {
		detail := fmt.Sprintf("element %d: %s", i, re.Op)
		if re.Detail != "" {
			detail += ": " + re.Detail
		}
		return &ResolveError{Op: op, Err: re.Err, Detail: detail}
	}
	return &ResolveError{Op: op, Err: err, Detail: fmt.Sprintf("element %d", i)}
}
