package errs

import (
	"errors"
	"fmt"
)

// Kind categorizes an error raised by objmeasure. See spec section 7 for
// the full list and when each one applies.
type Kind string

const (
	InvalidArgument  Kind = "InvalidArgument"
	AlreadyForged    Kind = "AlreadyForged"
	NotForged        Kind = "NotForged"
	DuplicateFeature Kind = "DuplicateFeature"
	DuplicateObject  Kind = "DuplicateObject"
	UnknownFeature   Kind = "UnknownFeature"
	UnknownObject    Kind = "UnknownObject"
	UnsupportedInput Kind = "UnsupportedInput"
	CyclicDependency Kind = "CyclicDependency"
)

// kindError is the concrete error type carrying a Kind alongside a message.
type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return string(e.kind) + ": " + e.msg }

// New builds an error of the given Kind with a literal message.
func New(kind Kind, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Newf builds an error of the given Kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err, or any error it wraps, carries the given Kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		if ke, ok := err.(*kindError); ok {
			return ke.kind == kind
		}
		err = errors.Unwrap(err)
	}
	return false
}

// KindOf returns the Kind carried by err, or "" if err does not carry one.
func KindOf(err error) Kind {
	for err != nil {
		if ke, ok := err.(*kindError); ok {
			return ke.kind
		}
		err = errors.Unwrap(err)
	}
	return ""
}
