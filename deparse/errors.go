package deparse

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// TokenizerFailure means the underlying reader rejected the markup.
	TokenizerFailure ErrorKind = iota + 1
	// RequiredValueNotFound means a mandatory attribute or child was absent.
	RequiredValueNotFound
	// InvalidIdentifier means a name violated the identifier charset or length.
	InvalidIdentifier
	// ValueConversionFailure means an attribute value could not be converted
	// into its typed representation.
	ValueConversionFailure
)

var (
	ErrTokenizerFailure       = errors.New("malformed markup")
	ErrRequiredValueNotFound  = errors.New("required value not found")
	ErrInvalidIdentifier      = errors.New("invalid identifier")
	ErrValueConversionFailure = errors.New("value conversion failed")
)

func (k ErrorKind) String() string {
	switch k {
	case TokenizerFailure:
		return "TokenizerFailure"
	case RequiredValueNotFound:
		return "RequiredValueNotFound"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case ValueConversionFailure:
		return "ValueConversionFailure"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case TokenizerFailure:
		return ErrTokenizerFailure
	case RequiredValueNotFound:
		return ErrRequiredValueNotFound
	case InvalidIdentifier:
		return ErrInvalidIdentifier
	case ValueConversionFailure:
		return ErrValueConversionFailure
	}
	return nil
}

// ParseError is the error type returned by every parsing step.
// Line and Column are filled in with the reader position at the time
// the error left the entity that produced it, when known.
type ParseError struct {
	Kind    ErrorKind
	Context string
	Err     error
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d, column %d", msg, e.Line, e.Column)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e's kind, so that
// errors.Is(err, ErrRequiredValueNotFound) works through wrapping.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, cause error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Context: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// RequiredValueError reports a missing mandatory attribute or child.
func RequiredValueError(format string, args ...interface{}) error {
	return newError(RequiredValueNotFound, nil, format, args...)
}

// InvalidIdentifierError reports a name that failed validation.
func InvalidIdentifierError(value string, reason string) error {
	return newError(InvalidIdentifier, nil, "%q: %s", value, reason)
}

// ValueConversionError reports an attribute value that could not be
// converted. cause may be nil.
func ValueConversionError(cause error, format string, args ...interface{}) error {
	return newError(ValueConversionFailure, cause, format, args...)
}

// KindOf returns the kind of the first ParseError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
