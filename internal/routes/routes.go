package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/domain"
	"github.com/FACorreiaa/facturation-pro/internal/app/domain/auth"
	"github.com/FACorreiaa/facturation-pro/internal/app/domain/dashboard"
	"github.com/FACorreiaa/facturation-pro/internal/app/domain/notifications"
	"github.com/FACorreiaa/facturation-pro/internal/app/domain/overview"
	"github.com/FACorreiaa/facturation-pro/internal/app/middleware"
	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
	"github.com/FACorreiaa/facturation-pro/internal/app/pages"
	database "github.com/FACorreiaa/facturation-pro/internal/db"
	"github.com/FACorreiaa/facturation-pro/internal/pkg/config"
)

type AppHandlers struct {
	JWT           *auth.JWTService
	Auth          *auth.AuthHandlers
	Base          *domain.BaseHandler
	Dashboard     *dashboard.Handler
	Notifications *notifications.Handler
}

// pinger is implemented by *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

func Setup(r *gin.Engine, db database.DB, cfg *config.Config, log *zap.Logger) {
	handlers := setupDependencies(db, cfg, log)
	setupRouter(r, db, handlers, cfg, log)
}

func setupDependencies(db database.DB, cfg *config.Config, log *zap.Logger) *AppHandlers {
	jwtService := auth.NewJWTService(cfg.JWT, log)

	authRepo := auth.NewPostgresAuthRepo(db, log)
	authService := auth.NewAuthService(authRepo, jwtService, log)

	notificationService := notifications.NewService(notifications.NewPostgresRepository(db, log), log)
	overviewService := overview.NewService(overview.NewPostgresRepository(db, log), log)

	baseHandler := domain.NewBaseHandler(log, notificationService, overviewService)

	return &AppHandlers{
		JWT:           jwtService,
		Auth:          auth.NewAuthHandlers(authService, jwtService, cfg.Auth, log),
		Base:          baseHandler,
		Dashboard:     dashboard.NewHandler(baseHandler, log),
		Notifications: notifications.NewHandler(notificationService, log),
	}
}

func setupRouter(r *gin.Engine, db database.DB, h *AppHandlers, cfg *config.Config, log *zap.Logger) {
	r.GET("/healthz", healthHandler(db))

	public := r.Group("/")
	public.Use(middleware.OptionalAuthMiddleware(h.JWT))
	{
		public.GET("/", func(c *gin.Context) {
			if middleware.GetUserFromContext(c) != nil {
				c.Redirect(http.StatusFound, auth.DashboardPath)
				return
			}
			h.Base.Render(c, http.StatusOK, pages.PublicLayout(navigation.BrandName, pages.LandingPage()))
		})
		public.GET("/sign-in", h.Auth.ShowSignIn)
		public.POST("/sign-in", h.Auth.SignIn)
		public.GET("/sign-up", h.Auth.ShowSignUp)
		public.POST("/sign-up", h.Auth.SignUp)
		public.POST("/sign-out", h.Auth.SignOut)
	}

	protected := r.Group("/dashboard")
	protected.Use(middleware.AuthMiddleware(h.JWT, cfg.Auth.SignInURL, log))
	{
		protected.GET("", h.Dashboard.Section)
		protected.GET("/:section", h.Dashboard.Section)
		protected.GET("/:section/*rest", h.Dashboard.Section)
	}

	api := r.Group("/api")
	api.Use(middleware.APIAuthMiddleware(h.JWT))
	{
		api.GET("/navigation", h.Dashboard.Navigation)
		api.GET("/notifications", h.Notifications.List)
		api.POST("/notifications/read", h.Notifications.MarkAllRead)
	}

	r.NoRoute(func(c *gin.Context) {
		h.Base.Render(c, http.StatusNotFound, pages.PublicLayout("Page introuvable", pages.NotFoundPage()))
	})

	log.Info("Routes registered")
}

func healthHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := db.(pinger); ok {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
