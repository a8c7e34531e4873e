package auth

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/observability/metrics"
	"github.com/FACorreiaa/facturation-pro/internal/app/pages"
	"github.com/FACorreiaa/facturation-pro/internal/pkg/config"
)

const (
	DashboardPath = "/dashboard"
	SignUpPath    = "/sign-up"

	msgInvalidCredentials = "Email ou mot de passe invalide"
	msgSignUpInvalid      = "Veuillez vérifier les informations saisies"
	msgEmailTaken         = "Un compte existe déjà avec cet email"
	msgUnexpected         = "Une erreur est survenue, veuillez réessayer"
)

type AuthHandlers struct {
	authService AuthService
	jwt         *JWTService
	cfg         config.AuthConfig
	logger      *zap.Logger
}

func NewAuthHandlers(authService AuthService, jwtService *JWTService, cfg config.AuthConfig, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		jwt:         jwtService,
		cfg:         cfg,
		logger:      logger,
	}
}

func (h *AuthHandlers) ShowSignIn(c *gin.Context) {
	h.render(c, http.StatusOK, pages.PublicLayout("Connexion", pages.SignInPage(h.flashes(c))))
}

func (h *AuthHandlers) ShowSignUp(c *gin.Context) {
	h.render(c, http.StatusOK, pages.PublicLayout("Inscription", pages.SignUpPage(h.flashes(c))))
}

func (h *AuthHandlers) SignIn(c *gin.Context) {
	email := c.PostForm("email")
	h.logger.Info("Sign in attempt", zap.String("email", email), zap.String("remote_addr", c.ClientIP()))

	user, token, err := h.authService.SignIn(c.Request.Context(), email, c.PostForm("password"))
	if err != nil {
		h.record(c, "sign_in", "failure")
		msg := msgUnexpected
		if errors.Is(err, models.ErrInvalidCredentials) || errors.Is(err, models.ErrValidation) {
			msg = msgInvalidCredentials
		} else {
			h.logger.Error("Sign in failed", zap.Error(err))
		}
		h.flash(c, msg)
		h.redirect(c, h.cfg.SignInURL)
		return
	}

	h.setTokenCookie(c, token, int(h.jwt.Expiration().Seconds()))
	h.record(c, "sign_in", "success")
	h.logger.Info("Successful sign in", zap.String("user_id", user.ID))
	h.redirect(c, DashboardPath)
}

func (h *AuthHandlers) SignUp(c *gin.Context) {
	params := models.SignUpParams{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
	}
	h.logger.Info("Sign up attempt", zap.String("email", params.Email), zap.String("remote_addr", c.ClientIP()))

	user, token, err := h.authService.SignUp(c.Request.Context(), params)
	if err != nil {
		h.record(c, "sign_up", "failure")
		switch {
		case errors.Is(err, models.ErrConflict):
			h.flash(c, msgEmailTaken)
		case errors.Is(err, models.ErrValidation):
			h.flash(c, msgSignUpInvalid)
		default:
			h.logger.Error("Sign up failed", zap.Error(err))
			h.flash(c, msgUnexpected)
		}
		h.redirect(c, SignUpPath)
		return
	}

	h.setTokenCookie(c, token, int(h.jwt.Expiration().Seconds()))
	h.record(c, "sign_up", "success")
	h.logger.Info("Successful sign up", zap.String("user_id", user.ID))
	h.redirect(c, DashboardPath)
}

func (h *AuthHandlers) SignOut(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	h.record(c, "sign_out", "success")
	h.redirect(c, h.cfg.AfterSignOutURL)
}

func (h *AuthHandlers) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", c.Request.TLS != nil, true)
}

// redirect answers htmx requests with HX-Redirect, everything else with a 303.
func (h *AuthHandlers) redirect(c *gin.Context, location string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", location)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (h *AuthHandlers) flash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		h.logger.Warn("Failed to save flash message", zap.Error(err))
	}
}

func (h *AuthHandlers) flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		h.logger.Warn("Failed to clear flash messages", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (h *AuthHandlers) record(c *gin.Context, action, outcome string) {
	metrics.Get().AuthRequestsTotal.Add(c.Request.Context(), 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	))
}

func (h *AuthHandlers) render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
	}
}
