package gin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tdelacour/semesterbuddy"
	"github.com/tdelacour/semesterbuddy/errors"
	"github.com/tdelacour/semesterbuddy/jwt"
	"github.com/tdelacour/semesterbuddy/users"
)

type HandlerFunc func(*gin.Context) (interface{}, error)

// created wraps a handler result that should be answered with a 201.
type created struct {
	body interface{}
}

// JSONFormatter renders the handler result as JSON. Errors coming out of
// the errors package keep their status code and message; anything else is
// flattened to a generic 500 so internals never reach the client.
func JSONFormatter(next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c)
		if err != nil {
			code := http.StatusInternalServerError
			msg := "Internal server error"
			if err, ok := err.(errors.Error); ok {
				code = err.Code()
				msg = err.Message()
			}

			c.JSON(code, map[string]interface{}{
				"error": msg,
			})
			return
		}

		if res, ok := res.(created); ok {
			c.JSON(http.StatusCreated, res.body)
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

func GetUser(c *gin.Context) (semesterbuddy.User, error) {
	u, ok := c.Get("user")
	if !ok {
		return semesterbuddy.User{}, errors.New("Authentication required", errors.Unauthorized())
	}

	user, ok := u.(semesterbuddy.User)
	if !ok {
		return semesterbuddy.User{}, errors.New("Authentication required", errors.Unauthorized())
	}

	return user, nil
}

type Authenticator struct {
	Encoder  *jwt.EncodeDecoder
	Resolver *users.Resolver
}

// Authenticate extracts the session token from the Authorization header,
// falling back to the token cookie for browser clients, resolves the email
// claim into a user and makes it available to the handler.
func (a *Authenticator) Authenticate(next HandlerFunc) HandlerFunc {
	return func(c *gin.Context) (interface{}, error) {
		bearer := sessionToken(c)
		if bearer == "" {
			return nil, errors.New("Authentication required", errors.Unauthorized())
		}

		email, err := a.Encoder.Decode(bearer)
		if err != nil {
			return nil, errors.New("Authentication required", errors.Unauthorized(), errors.WithCause(err))
		}

		user, err := a.Resolver.Resolve(email)
		if err != nil {
			return nil, errors.New("Authentication required", errors.Unauthorized(), errors.WithCause(err))
		}

		c.Set("user", user)
		return next(c)
	}
}

func sessionToken(c *gin.Context) string {
	token := c.Request.Header.Get("Authorization")
	if len(token) > 6 && strings.ToLower(token[:7]) == "bearer " {
		return token[7:]
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}

	return ""
}
