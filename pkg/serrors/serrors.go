// Package serrors provides semantic error kinds shared by the converter, the
// history service and the outer surfaces (HTTP API, CLI). A kind classifies
// a failure; the wrapped cause and message keep the details.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Conversion kinds. Every failed conversion carries exactly one of them.
var (
	// ErrInvalidInput indicates the raw input is not a finite real number.
	ErrInvalidInput = NewKind("INVALID_INPUT")
	// ErrUnsupportedCategory indicates the category identifier is unknown.
	ErrUnsupportedCategory = NewKind("UNSUPPORTED_CATEGORY")
	// ErrUnsupportedConversion indicates there is no rule for the unit pair within the category.
	ErrUnsupportedConversion = NewKind("UNSUPPORTED_CONVERSION")
)

// Kinds used by the outer surfaces.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates the client sent malformed data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
)

// messages holds the user facing default message of each conversion kind.
var messages = map[Kind]string{ //nolint: gochecknoglobals
	ErrInvalidInput:          "Please enter a valid number",
	ErrUnsupportedCategory:   "This category is not supported",
	ErrUnsupportedConversion: "This conversion is not supported",
}

// DefaultMessage returns the user facing message for k, or k's name when the
// kind has none.
func DefaultMessage(k Kind) string {
	if msg, ok := messages[k]; ok {
		return msg
	}
	if k == nil {
		return ""
	}

	return k.Error()
}

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional arbitrary message. It fully supports
// errors.Is/errors.As and unwrapping.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's default message.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped error (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause (err) and allows adding an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return DefaultMessage(e.kind)
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost semantic kind found in err's chain, or nil
// when err carries none. A bare Kind sentinel is returned as is.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// UserMessage returns the message to show to an end user: the attached
// message when there is one, otherwise the kind's default message.
func UserMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return DefaultMessage(KindOf(err))
}

// ParseKind returns the kind named code, e.g. "INVALID_INPUT", or nil when
// no kind of this package has that name.
func ParseKind(code string) Kind {
	for _, k := range []Kind{
		ErrInvalidInput, ErrUnsupportedCategory, ErrUnsupportedConversion,
		ErrNotFound, ErrBadRequest, ErrUnauthorized, ErrInternal,
	} {
		if k.Error() == code {
			return k
		}
	}

	return nil
}
