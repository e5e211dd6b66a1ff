package errors

import (
	"fmt"
)

// Error is the error type the endpoint layers understand: it carries the
// HTTP status code to answer with and, optionally, the underlying cause.
// The cause is for server-side logs only, it never reaches the client.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when no enricher sets one. 500, Internal Server Error.
var DefaultCode = 500

type apiError struct {
	code  int
	msg   string
	cause *apiError
}

func (err *apiError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *apiError) Code() int { return err.code }

func (err *apiError) Message() string { return err.msg }

func (err *apiError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

type Enricher func(error) error

func WithCode(code int) Enricher {
	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*apiError); ok {
			err.code = code
			return err
		}

		return &apiError{code: code, msg: err.Error()}
	}
}

func WithCause(cause error) Enricher {
	if cause == nil {
		return func(err error) error { return err }
	}

	wrapped, ok := cause.(*apiError)
	if !ok {
		wrapped = &apiError{code: DefaultCode, msg: cause.Error()}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if err, ok := err.(*apiError); ok {
			err.cause = wrapped
			return err
		}

		return &apiError{
			code:  wrapped.code,
			msg:   err.Error(),
			cause: wrapped,
		}
	}
}

func New(msg string, fs ...Enricher) error {
	var err error = &apiError{code: DefaultCode, msg: msg}
	for _, f := range fs {
		err = f(err)
	}

	return err
}

// Code extracts the HTTP status code of err, falling back to DefaultCode
// for errors that did not come out of this package.
func Code(err error) int {
	if err, ok := err.(Error); ok {
		return err.Code()
	}
	return DefaultCode
}
