package server

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/facturation-pro/internal/app/middleware"
	database "github.com/FACorreiaa/facturation-pro/internal/db"
	"github.com/FACorreiaa/facturation-pro/internal/pkg/config"
	"github.com/FACorreiaa/facturation-pro/internal/routes"
)

const sessionName = "facturation_session"

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(db database.DB, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
		SkipPaths:  []string{"/healthz"},
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.OTELGinMiddleware(cfg.Observability.ServiceName))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())

	store := cookie.NewStore([]byte(cfg.Auth.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 600, HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))

	routes.Setup(r, db, cfg, logger)

	return r
}

// zapContextFunc adds request and trace identifiers to access logs. Bodies are
// not logged: sign-in forms carry passwords.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := middleware.GetRequestID(c); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		if user := middleware.GetUserFromContext(c); user != nil {
			fields = append(fields, zap.String("user_id", user.ID))
		}

		return fields
	}
}
