package api

import (
	"errors"
	"fmt"
)

// ErrorKind tells how a failed run should be treated by its caller.
type ErrorKind int

const (
	// KindTemplate is a problem in the template itself: malformed files,
	// unknown instructions, or label errors found before simulation.
	KindTemplate ErrorKind = iota + 1
	// KindFatal is any other failure.
	KindFatal
)

func (k ErrorKind) String() string {
	switch k {
	case KindTemplate:
		return "template"
	case KindFatal:
		return "fatal"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every failing Driver method.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of an api error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func templateError(err error) error {
	return &Error{Kind: KindTemplate, Err: err}
}

func fatalError(err error) error {
	return &Error{Kind: KindFatal, Err: err}
}
