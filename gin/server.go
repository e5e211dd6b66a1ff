package gin

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tdelacour/semesterbuddy"
	"github.com/tdelacour/semesterbuddy/files"
	fileshttp "github.com/tdelacour/semesterbuddy/files/http"
	"github.com/tdelacour/semesterbuddy/files/services"
	"github.com/tdelacour/semesterbuddy/jwt"
	"github.com/tdelacour/semesterbuddy/log"
	"github.com/tdelacour/semesterbuddy/users"
)

// Pinger answers the database connectivity probe.
type Pinger interface {
	Ping() error
}

// Server adapts a gin router to the http.Handler registration interface the
// go-kit modules mount on. Route parameters are copied into the request
// context under "params", where the kit decoders read them.
type Server struct {
	Router *gin.Engine
}

func (s *Server) RegisterHandler(path, method string, f http.Handler) {
	s.Router.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		f.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

func New(
	noteStore semesterbuddy.NoteStore,
	notebookStore semesterbuddy.NotebookStore,
	lectureStore semesterbuddy.LectureStore,
	noteIndex semesterbuddy.NoteIndex,
	fileStore files.Store,
	userRepository semesterbuddy.UserRepository,
	sk semesterbuddy.SigningKey,
	db Pinger,
	logger log.Logger,
) (http.Handler, error) {
	router := gin.Default()

	// Security headers
	router.Use(func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-DNS-Prefetch-Control", "on")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "origin-when-cross-origin")
		c.Next()
	})

	// Rate limiting (disabled for now: 10 requests per second per process)
	// limiter := rate.NewLimiter(rate.Every(time.Second/10), 10)
	// router.Use(func(c *gin.Context) {
	// 	if !limiter.Allow() {
	// 		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too Many Requests"})
	// 		return
	// 	}
	// 	c.Next()
	// })

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	resolver := users.NewResolver(userRepository)
	authenticator := &Authenticator{
		Encoder:  jwt.NewEncodeDecoder([]byte(sk.Key)),
		Resolver: resolver,
	}

	// Database connectivity probe, no auth
	router.GET("/test-db", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.Error("database probe failed: ", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":    "error",
				"message":   "Failed to connect to database",
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Database connection successful",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Session echo
	router.GET("/protected", JSONFormatter(authenticator.Authenticate(protectedGet)))
	router.POST("/protected", JSONFormatter(authenticator.Authenticate(protectedPost)))

	// Notes
	noteHandler := NoteHandler{
		Store:         noteStore,
		Index:         noteIndex,
		Files:         fileStore,
		Logger:        logger,
		Authenticator: authenticator,
	}
	noteHandler.RegisterRoutes(router)

	// Notebooks
	notebookHandler := NotebookHandler{
		Store:         notebookStore,
		Files:         fileStore,
		Logger:        logger,
		Authenticator: authenticator,
	}
	notebookHandler.RegisterRoutes(router)

	// Lectures
	lectureHandler := LectureHandler{
		Store:         lectureStore,
		Logger:        logger,
		Authenticator: authenticator,
	}
	lectureHandler.RegisterRoutes(router)

	// Files module, go-kit layering
	fileService := services.NewFileService(fileStore)
	fileshttp.RegisterFileEndpoints(&Server{Router: router}, fileService, []byte(sk.Key), users.NewAuthenticator(resolver))

	// Disk mode serves the uploaded files statically
	if disk, ok := fileStore.(*files.Disk); ok {
		router.Static("/uploads", filepath.Join(disk.PublicRoot, "uploads"))
	}

	return router, nil
}

func protectedGet(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"message": "This is a protected API route",
		"user":    formatUser(user),
	}, nil
}

func protectedPost(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"message": "Data received successfully",
		"user":    formatUser(user),
		"data":    body,
	}, nil
}

func formatUser(user semesterbuddy.User) map[string]interface{} {
	formatted := map[string]interface{}{
		"id":    strconv.Itoa(user.ID),
		"email": user.Email,
	}
	if user.DisplayName != "" {
		formatted["displayName"] = user.DisplayName
	}
	if user.PhotoURL != "" {
		formatted["photoURL"] = user.PhotoURL
	}

	return formatted
}
