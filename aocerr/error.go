// Package aocerr provides the uniform error type returned by puzzle solvers
// and the parsing helpers.
//
// Every failure is an *Error tagged with a Kind. Solvers may return any error;
// the runner only needs its text. Puzzle code that wants the tagged form can
// build one with the constructors here or classify an arbitrary error with From.
package aocerr

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

// Kind identifies the class of failure carried by an Error.
type Kind int

const (
	KindSimple Kind = iota
	KindIO
	KindWrapped
	KindParse
	KindNumbered
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "error"
	case KindIO:
		return "io error"
	case KindWrapped:
		return "wrapped error"
	case KindParse:
		return "parse error"
	case KindNumbered:
		return "error code"
	case KindNotImplemented:
		return "not implemented"
	default:
		return "unknown error"
	}
}

// ErrNotImplemented matches any Error of KindNotImplemented via errors.Is.
var ErrNotImplemented = &Error{Kind: KindNotImplemented}

// Error is a tagged failure. Msg is used by KindSimple and KindParse, Code by
// KindNumbered and Err by KindIO and KindWrapped.
type Error struct {
	Kind Kind
	Msg  string
	Code int
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO, KindWrapped:
		if e.Err == nil {
			return e.Kind.String()
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case KindNumbered:
		return fmt.Sprintf("%s: %d", e.Kind, e.Code)
	case KindNotImplemented:
		return e.Kind.String()
	case KindParse:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	default:
		return e.Msg
	}
}

// Unwrap returns the underlying error for KindIO and KindWrapped.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an Error of the same kind with no payload,
// which lets sentinels such as ErrNotImplemented match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Msg == "" && t.Code == 0 && t.Err == nil
}

// New returns a simple message error.
func New(msg string) *Error {
	return &Error{Kind: KindSimple, Msg: msg}
}

// Newf returns a simple message error built from a format string.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// IO wraps an I/O failure.
func IO(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

// Wrap wraps an externally sourced error.
func Wrap(err error) *Error {
	return &Error{Kind: KindWrapped, Err: err}
}

// Parse returns a parse failure with the given message.
func Parse(msg string) *Error {
	return &Error{Kind: KindParse, Msg: msg}
}

// Parsef returns a parse failure built from a format string.
func Parsef(format string, args ...any) *Error {
	return Parse(fmt.Sprintf(format, args...))
}

// Numbered returns an error identified only by a numeric code.
func Numbered(code int) *Error {
	return &Error{Kind: KindNumbered, Code: code}
}

// NotImplemented returns the error a solver reports for a part it has not solved yet.
func NotImplemented() *Error {
	return &Error{Kind: KindNotImplemented}
}

// From classifies err into an *Error. Existing *Error values are returned as
// is, number conversion failures become parse errors, path errors become I/O
// errors and anything else is wrapped. From(nil) returns nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return Parse(numErr.Error())
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return IO(err)
	}

	return Wrap(err)
}
