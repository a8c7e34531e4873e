package notifications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/middleware"
	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/pages"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List serves GET /api/notifications.
func (h *Handler) List(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to load notifications", zap.Error(err), zap.String("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// MarkAllRead serves POST /api/notifications/read. htmx callers get the
// refreshed dropdown fragment back.
func (h *Handler) MarkAllRead(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), user.ID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrBadRequest) {
			status = http.StatusBadRequest
		}
		h.logger.Error("Failed to mark notifications read", zap.Error(err), zap.String("userID", user.ID))
		c.JSON(status, gin.H{"error": "Failed to update notifications"})
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Warn("Failed to reload notifications", zap.Error(err))
		summary = emptySummary()
	}

	if c.GetHeader("HX-Request") == "true" {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := pages.NotificationMenu(summary).Render(c.Request.Context(), c.Writer); err != nil {
			h.logger.Error("Failed to render notifications", zap.Error(err))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
