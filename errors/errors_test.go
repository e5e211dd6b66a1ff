package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCode(t *testing.T) {
	tts := []struct {
		err      error
		code     int
		expected *apiError
	}{
		{
			err:      errors.New("plain error"),
			code:     404,
			expected: &apiError{msg: "plain error", code: 404},
		},
		{
			err:      &apiError{msg: "coded error", code: 200},
			code:     501,
			expected: &apiError{msg: "coded error", code: 501},
		},
		{
			err: &apiError{
				msg:   "keeps its cause",
				code:  125,
				cause: &apiError{msg: "the cause"},
			},
			code: 305,
			expected: &apiError{
				msg:   "keeps its cause",
				code:  305,
				cause: &apiError{msg: "the cause"},
			},
		},
		{
			err:      nil,
			code:     305,
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCode(tt.code)(tt.err).(*apiError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCode", i))
	}
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		err      error
		cause    error
		expected *apiError
	}{
		{
			err:   errors.New("plain error"),
			cause: errors.New("the cause"),
			expected: &apiError{
				msg:   "plain error",
				code:  500,
				cause: &apiError{msg: "the cause", code: DefaultCode},
			},
		},
		{
			// the cause's code is forwarded when the wrapped error has none
			err:   errors.New("plain error"),
			cause: &apiError{msg: "coded cause", code: 120},
			expected: &apiError{
				msg:   "plain error",
				code:  120,
				cause: &apiError{msg: "coded cause", code: 120},
			},
		},
		{
			err:   &apiError{msg: "coded error", code: 200},
			cause: &apiError{msg: "coded cause", code: 300},
			expected: &apiError{
				msg:   "coded error",
				code:  200,
				cause: &apiError{msg: "coded cause", code: 300},
			},
		},
		{
			err:      nil,
			cause:    errors.New("ignored when the wrapper is nil"),
			expected: nil,
		},
		{
			// a nil cause leaves the error untouched, so call sites can
			// wrap an error that may or may not be set
			err:      &apiError{msg: "no cause after all", code: 200},
			cause:    nil,
			expected: &apiError{msg: "no cause after all", code: 200},
		},
	}

	for i, tt := range tts {
		err, _ := WithCause(tt.cause)(tt.err).(*apiError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCause", i))
	}
}

func TestCode(t *testing.T) {
	if code := Code(New("not there", NotFound())); code != 404 {
		t.Errorf("incorrect code: expected 404 got %d", code)
	}

	if code := Code(errors.New("anything")); code != DefaultCode {
		t.Errorf("incorrect code: expected %d got %d", DefaultCode, code)
	}
}

func assertErrors(exp *apiError, got *apiError, t *testing.T, name string) {
	if exp == nil && got == nil {
		return
	}

	if exp == nil || got == nil {
		t.Errorf("%s - expected %v, got %v", name, exp, got)
		return
	}

	if got.code != exp.code {
		t.Errorf("%s - code: %d != %d", name, exp.code, got.code)
	}

	if got.msg != exp.msg {
		t.Errorf("%s - msg: %s != %s", name, exp.msg, got.msg)
	}

	assertErrors(exp.cause, got.cause, t, name)
}
