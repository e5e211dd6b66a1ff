package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"

	"github.com/tdelacour/semesterbuddy/errors"
)

// Server defines the interface to register the http handlers.
type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

// encodeError writes an error as an HTTP response. Coded errors keep
// their status and expose only their message; anything else is a generic
// 500, the detail stays in the server logs.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	msg := "Internal server error"

	switch err {
	case kitjwt.ErrTokenContextMissing, kitjwt.ErrTokenInvalid, kitjwt.ErrTokenExpired, kitjwt.ErrTokenMalformed, kitjwt.ErrTokenNotActive, kitjwt.ErrUnexpectedSigningMethod:
		statusCode = http.StatusUnauthorized
		msg = "Authentication required"
	default:
		if err, ok := err.(errors.Error); ok {
			statusCode = err.Code()
			msg = err.Message()
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": msg,
	})
}
