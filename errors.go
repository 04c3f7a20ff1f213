package dyn

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrParse is the sentinel every parse *Error wraps, so callers can use
// errors.Is(err, dyn.ErrParse) without switching on Kind.
var ErrParse = errors.New("parse error")

// ErrorKind classifies a parse failure. The taxonomy is closed: no other
// kinds are produced. There is deliberately no DuplicateKey kind: a
// repeated JSON object key is not an error, the last occurrence wins.
// CsvRaggedRow is raised only for an over-filled row (more fields than the
// expected width); an under-filled row is padded with None instead.
type ErrorKind int8

const (
	UnexpectedEndOfInput ErrorKind = iota
	UnexpectedCharacter
	InvalidEscape
	InvalidUnicodeEscape
	InvalidNumber
	NumberOutOfRange
	UnterminatedString
	UnterminatedArray
	UnterminatedObject
	TrailingContent
	CsvRaggedRow
	CsvUnescapedQuote
	CsvUnterminatedQuotedField
	IoError
	numErrorKinds
)

var errorKindStrings = [numErrorKinds]string{
	"UnexpectedEndOfInput",
	"UnexpectedCharacter",
	"InvalidEscape",
	"InvalidUnicodeEscape",
	"InvalidNumber",
	"NumberOutOfRange",
	"UnterminatedString",
	"UnterminatedArray",
	"UnterminatedObject",
	"TrailingContent",
	"CsvRaggedRow",
	"CsvUnescapedQuote",
	"CsvUnterminatedQuotedField",
	"IoError",
}

// String names the kind.
func (k ErrorKind) String() string {
	if k < 0 || k >= numErrorKinds {
		return "<unknown>"
	}
	return errorKindStrings[k]
}

// Error is a parse failure with positional context. It implements the
// standard error interface and unwraps to ErrParse (or, for IoError, to
// the underlying I/O cause) so errors.Is/As keep working.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Line   int
	Column int
	cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == IoError {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %s (line %d, column %d)", e.Kind, e.Msg, e.Line, e.Column)
}

// Unwrap lets callers use errors.Is(err, dyn.ErrParse), or reach the
// original I/O error for an IoError.
func (e *Error) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return ErrParse
}

// newError builds a positional parse Error.
func newError(kind ErrorKind, line, column int, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Line:   line,
		Column: column,
	}
}

// newIoError wraps a failure to obtain bytes from an external source
// (a filesystem path) with a stack-carrying cause, per the ambient
// error-handling stack documented in SPEC_FULL.md.
func newIoError(context string, cause error) *Error {
	return &Error{
		Kind:  IoError,
		Msg:   context,
		cause: errors.Wrap(cause, context),
	}
}
