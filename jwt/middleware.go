package jwt

import (
	"github.com/golang-jwt/jwt/v4"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
)

// Middleware parses the bearer token the transport layer stored in the
// context and makes the claims available to the endpoints.
func Middleware(key []byte) endpoint.Middleware {
	return kitjwt.NewParser(func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.SigningMethodHS256, func() jwt.Claims {
		return &Claims{}
	})
}
