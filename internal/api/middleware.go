package api

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/service"
)

// Constants for context keys
const (
	ContextRequestIDKey = "requestID"
	ContextUserKey      = "user"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the caller's X-Request-ID or generates a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// CORSMiddleware lets the browser front end call the API. An empty list or "*"
// allows every origin.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader, "Content-Disposition"}
	return cors.New(cfg)
}

// SessionMiddleware rejects requests while nobody is logged in. The session token is
// not inspected; the dashboard has a single shared session.
func SessionMiddleware(store *service.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := store.CurrentUser()
		if user == nil {
			abortWithError(c, http.StatusUnauthorized, "Not logged in")
			return
		}
		c.Set(ContextUserKey, *user)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func getRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}

// Helper function to get the session user from context (used by handlers)
func getUserFromContext(c *gin.Context) (domain.User, error) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return domain.User{}, errors.New("user not found in context")
	}
	user, ok := raw.(domain.User)
	if !ok {
		return domain.User{}, errors.New("invalid user type in context")
	}
	return user, nil
}
