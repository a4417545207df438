// Package errors provides the typed errors returned by inventory operations.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an inventory error.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidOperation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidOperation:
		return "InvalidOperation"
	default:
		return "Unknown"
	}
}

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Error is an inventory error carrying its kind and a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrNotFound) works through wrapping.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalidOperation:
		return target == ErrInvalidOperation
	default:
		return false
	}
}

// NotFound returns an error of kind KindNotFound.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidOperation returns an error of kind KindInvalidOperation.
func InvalidOperation(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidOperation, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
// The second value is false when err carries no inventory error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Message returns the message of the first *Error in err's chain, or err.Error() otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
