// Package errors defines the coded error type used across kundali.
//
// Every error the engine returns carries a [Code] so callers can branch
// without matching message text:
//
//	if errors.Is(err, errors.ErrCodeInvalidCusps) {
//	    // fall back to equal houses
//	}
//
// Most data problems never reach the caller as an error. The chart
// assembly turns them into sentinel values and warnings, and only
// [ErrCodeInvalidJulianDay] aborts a calculation (see [IsFatal]).
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidJulianDay Code = "INVALID_JULIAN_DAY"
	ErrCodeInvalidLongitude Code = "INVALID_LONGITUDE"
	ErrCodeInvalidCusps     Code = "INVALID_CUSPS"
	ErrCodeInvalidChart     Code = "INVALID_CHART"
	ErrCodeInvalidPlanet    Code = "INVALID_PLANET"
	ErrCodeInvalidWindow    Code = "INVALID_WINDOW"

	// ErrCodeLookupGap means a static table had no entry, e.g. a
	// nakshatra index with no lord.
	ErrCodeLookupGap Code = "LOOKUP_GAP"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	// ErrCodeOutOfRange is a time outside the samples of an ephemeris table.
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// outermost returns the first *Error in err's chain.
func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the first *Error in err's chain has code. A coded
// error wrapped inside another coded error is not consulted.
func Is(err error, code Code) bool {
	e, ok := outermost(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix or cause, for
// display in reports. Errors without a code are returned unchanged.
func UserMessage(err error) string {
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err invalidates every derived computation.
// An unusable Julian Day is the only such condition.
func IsFatal(err error) bool {
	return Is(err, ErrCodeInvalidJulianDay)
}
