// Package apperrors provides chainable error values that carry an HTTP
// status code alongside the message. Sentinel errors are declared once per
// layer and derived with New/Msg/Err so that errors.Is works across the
// whole chain.
package apperrors

import (
	"fmt"
	"strings"
)

type Error interface {
	error
	Unwrap() error
	// New derives a child sentinel from this error. The child inherits the
	// status code unless overridden.
	New(msg string) Error
	// Msg wraps this error with an additional message.
	Msg(msg string) Error
	// Err wraps this error with one or more causes.
	Err(err ...error) Error
	// MsgErr wraps this error with a message and one or more causes.
	MsgErr(msg string, err ...error) Error
	SetStatusCode(code int) Error
	StatusCode() int
	SetExpandError(expand bool) Error
	// ErrorAll returns the full message chain, outermost first.
	ErrorAll() string
}

type appError struct {
	msg        string
	err        error
	statusCode int
	expand     bool
}

func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	if e.expand && e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *appError) Unwrap() error {
	return e.err
}

func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		err:        e,
		statusCode: e.statusCode,
		expand:     e.expand,
	}
}

func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		err:        e,
		statusCode: e.statusCode,
		expand:     e.expand,
	}
}

func (e *appError) Err(err ...error) Error {
	return &appError{
		msg:        e.msg,
		err:        wrapCauses(e, err),
		statusCode: e.statusCode,
		expand:     e.expand,
	}
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	return &appError{
		msg:        msg,
		err:        wrapCauses(e, err),
		statusCode: e.statusCode,
		expand:     e.expand,
	}
}

func (e *appError) SetStatusCode(code int) Error {
	e.statusCode = code
	return e
}

func (e *appError) StatusCode() int {
	return e.statusCode
}

func (e *appError) SetExpandError(expand bool) Error {
	e.expand = expand
	return e
}

func (e *appError) ErrorAll() string {
	var parts []string
	var err error = e
	for err != nil {
		if ae, ok := err.(*appError); ok {
			parts = append(parts, ae.msg)
			err = ae.err
			continue
		}
		parts = append(parts, err.Error())
		break
	}
	return strings.Join(parts, ": ")
}

// wrapCauses joins the parent and the supplied causes into a single error
// chain so errors.Is matches both the sentinel hierarchy and the causes.
func wrapCauses(parent error, causes []error) error {
	f := "%w"
	args := []any{parent}
	for _, c := range causes {
		if c == nil {
			continue
		}
		f += " %w"
		args = append(args, c)
	}
	return fmt.Errorf(f, args...)
}
