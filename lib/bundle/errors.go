package bundle

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess           RetCode = iota // 0: Operation completed successfully.
	RetCInternalError                    // 1: Operation failed due to an internal error.
	RetCInvalidArgument                  // 2: A required argument was missing or empty.
	RetCResourceNotFound                 // 3: The requested dictionary could not be resolved.
	RetCMalformedResource                // 4: The dictionary was found but could not be decoded.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCInvalidArgument:
		return "InvalidArgument"
	case RetCResourceNotFound:
		return "ResourceNotFound"
	case RetCMalformedResource:
		return "MalformedResource"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the error type returned by all loaders, sources and iterators of this module.
// It wraps a return code (of type RetCode), a message and an optional cause.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
	Err  error   // The underlying error (may be nil)
}

// Sentinel errors for use with errors.Is. Two errors match if their codes are equal.
var (
	ErrInvalidArgument   = &Error{Code: RetCInvalidArgument, Msg: "invalid argument"}
	ErrResourceNotFound  = &Error{Code: RetCResourceNotFound, Msg: "resource not found"}
	ErrMalformedResource = &Error{Code: RetCMalformedResource, Msg: "malformed resource"}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("BundleError (code %s): %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("BundleError (code %s): %s", e.Code, e.Msg)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// WrapError creates a new Error with the given code and message that wraps err.
func WrapError(code RetCode, msg string, err error) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
		Err:  err,
	}
}

// CodeOf returns the RetCode carried by err, RetCSuccess for nil
// and RetCInternalError for errors that are not of type *Error.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RetCInternalError
}
