package middleware

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/domain/auth"
	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/observability/metrics"
)

const (
	userKey         = "user"
	requestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// Client-supplied request ids end up in logs and response headers.
var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9\-]{1,64}$`)

// TokenValidator is the part of auth.JWTService the middleware depends on.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid session. Browsers are redirected to the
// sign-in page; htmx requests get a 401 with HX-Redirect.
func AuthMiddleware(validator TokenValidator, signInURL string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, validator)
		if !ok {
			logger.Warn("Unauthenticated request",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			if c.GetHeader("HX-Request") == "true" {
				c.Header("HX-Redirect", signInURL)
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Redirect(http.StatusFound, signInURL)
			c.Abort()
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the user when a valid token is present and lets
// anonymous visitors through.
func OptionalAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := authenticate(c, validator); ok {
			SetUser(c, user)
		}
		c.Next()
	}
}

// APIAuthMiddleware answers 401 JSON instead of redirecting.
func APIAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, validator)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		SetUser(c, user)
		c.Next()
	}
}

// authenticate checks the cookie first, then the Authorization header.
func authenticate(c *gin.Context, validator TokenValidator) (*models.User, bool) {
	var tokenString string
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie != "" {
		tokenString = cookie
	}
	if tokenString == "" {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		return nil, false
	}

	claims, err := validator.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}
	return auth.UserFromClaims(claims), true
}

// GetUserFromContext returns the signed-in user, or nil for anonymous requests.
func GetUserFromContext(c *gin.Context) *models.User {
	if v, exists := c.Get(userKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// SetUser stores the signed-in user for downstream handlers.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(userKey, user)
}

// RequestIDMiddleware propagates X-Request-ID. Absent or malformed ids are
// replaced with a fresh UUID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, HX-Request, HX-Target, HX-Current-URL")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// htmx and lucide are served from unpkg.
		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' https://unpkg.com; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// MetricsMiddleware records request count and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
			attribute.Int("status", c.Writer.Status()),
		)
		m := metrics.Get()
		m.HTTPRequestsTotal.Add(c.Request.Context(), 1, attrs)
		m.HTTPRequestDuration.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
	}
}

// OTELGinMiddleware starts a server span per request.
func OTELGinMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
