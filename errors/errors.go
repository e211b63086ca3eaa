package errors

import (
	"fmt"
	"strings"
)

// Code identifies an error category. The literals are part of the binding's
// stable surface: callers on the far side of the C boundary match on them as
// strings.
type Code string

const (
	// Codes produced by the binding itself, before the engine is invoked.
	CodeInvalidArgument        Code = "InvalidArgument"
	CodeInvalidCoordinateIndex Code = "InvalidCoordinateIndex"
	CodeInvalidDataset         Code = "InvalidDataset"
	CodeInvalidAlgorithm       Code = "InvalidAlgorithm"
	CodeInvalidFormat          Code = "InvalidFormat"
	CodeTooBig                 Code = "TooBig"

	// CodeException marks a captured panic. It carries the panic message and
	// nothing else; the binding never lets a panic cross a public boundary.
	CodeException Code = "Exception"
)

// VerbCode returns the generic fallback code for a request verb, e.g.
// "RouteError" for Route. Used when the engine reports failure but its
// payload yields no structured code.
func VerbCode(verb string) Code {
	return Code(verb + "Error")
}

// Error is the structured error type used throughout the binding.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Code))
	b.WriteByte(']')

	if e.Message != "" {
		b.WriteByte(' ')
		b.WriteString(e.Message)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two *Errors match when their
// codes are equal, so sentinel comparisons like
// errors.Is(err, &Error{Code: CodeTooBig}) work regardless of message.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: code, Message: msg}
}

// Convenience constructors for common error patterns

// InvalidArgument creates an InvalidArgument error.
func InvalidArgument(format string, args ...any) *Error {
	return New(CodeInvalidArgument, format, args...)
}

// InvalidCoordinateIndex creates an error for an index outside the current
// coordinate count.
func InvalidCoordinateIndex(index, count int) *Error {
	return &Error{
		Code:    CodeInvalidCoordinateIndex,
		Message: fmt.Sprintf("coordinate index %d out of range (count %d)", index, count),
	}
}

// InvalidDataset creates an InvalidDataset error.
func InvalidDataset(detail string, cause error) *Error {
	return &Error{Code: CodeInvalidDataset, Message: detail, Cause: cause}
}

// InvalidAlgorithm creates an error for an unrecognized algorithm selection.
func InvalidAlgorithm(value any) *Error {
	return &Error{
		Code:    CodeInvalidAlgorithm,
		Message: fmt.Sprintf("unrecognized algorithm %v", value),
	}
}

// InvalidFormat creates an error for an unrecognized or mismatched output
// format.
func InvalidFormat(format string, args ...any) *Error {
	return New(CodeInvalidFormat, format, args...)
}

// TooBig creates an error for a request exceeding a configured location
// limit.
func TooBig(verb string, count, limit int) *Error {
	return &Error{
		Code:    CodeTooBig,
		Message: fmt.Sprintf("%s request with %d coordinates exceeds limit of %d", verb, count, limit),
	}
}

// FromPayload creates an error from the code/message pair extracted from an
// engine error payload. The code is preserved verbatim.
func FromPayload(code, message string) *Error {
	return &Error{Code: Code(code), Message: message}
}

// Generic creates the per-verb fallback error used when the engine reports
// failure without a readable payload.
func Generic(verb string) *Error {
	return &Error{
		Code:    VerbCode(verb),
		Message: fmt.Sprintf("%s request failed", strings.ToLower(verb)),
	}
}

// Exception wraps a recovered panic value as an Exception-coded error.
func Exception(v any) *Error {
	if err, ok := v.(error); ok {
		return &Error{Code: CodeException, Message: err.Error(), Cause: err}
	}
	return &Error{Code: CodeException, Message: fmt.Sprint(v)}
}

// Recover converts an in-flight panic into an Exception error assigned to
// *errp. Defer it at every public boundary entry; it is a no-op when no panic
// is in flight.
func Recover(errp *error) {
	if r := recover(); r != nil {
		*errp = Exception(r)
	}
}

// CodeOf returns the code of err when it is an *Error, or CodeException for
// any other non-nil error.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeException
}

// MessageOf returns the message of err when it is an *Error, or err.Error()
// otherwise.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return err.Error()
}
