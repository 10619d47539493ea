package adapter

import (
	"fmt"
)

type ErrorKind int

const (
	// DriverError wraps a failure surfaced by the database driver.
	DriverError ErrorKind = iota + 1

	// MismatchError means the caller supplied a value of the wrong variant
	// for the operation's contract.
	MismatchError

	// UnsupportedError means no encoding or decoding rule exists for an
	// encountered parameter variant or column type.
	UnsupportedError
)

func (k ErrorKind) String() string {
	switch k {
	case DriverError:
		return "driver error"
	case MismatchError:
		return "type mismatch"
	case UnsupportedError:
		return "unsupported type"
	}

	return ""
}

// Error is the single error type every fallible adapter operation returns.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying driver error; nil unless Kind is DriverError
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("adapter: %s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("adapter: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func driverError(err error) *Error {
	return &Error{Kind: DriverError, Err: err}
}

func mismatchError(format string, args ...interface{}) *Error {
	return &Error{Kind: MismatchError, Msg: fmt.Sprintf(format, args...)}
}

func unsupportedError(format string, args ...interface{}) *Error {
	return &Error{Kind: UnsupportedError, Msg: fmt.Sprintf(format, args...)}
}
