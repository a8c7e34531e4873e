package domain

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/facturation-pro/internal/app/domain/notifications"
	"github.com/FACorreiaa/facturation-pro/internal/app/domain/overview"
	"github.com/FACorreiaa/facturation-pro/internal/app/middleware"
	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
	"github.com/FACorreiaa/facturation-pro/internal/app/observability/metrics"
	"github.com/FACorreiaa/facturation-pro/internal/app/pages"
)

type BaseHandler struct {
	Logger        *zap.Logger
	Notifications notifications.Service
	Overview      overview.Service
	Now           func() time.Time
}

func NewBaseHandler(logger *zap.Logger, notificationService notifications.Service, overviewService overview.Service) *BaseHandler {
	return &BaseHandler{
		Logger:        logger,
		Notifications: notificationService,
		Overview:      overviewService,
		Now:           time.Now,
	}
}

// NewLayoutData assembles the shell for the current request. Notifications and
// quick stats load concurrently; either one failing leaves its slot empty.
func (h *BaseHandler) NewLayoutData(c *gin.Context, content templ.Component) models.LayoutTempl {
	start := time.Now()
	ctx := c.Request.Context()
	user := middleware.GetUserFromContext(c)
	defer func() {
		metrics.Get().ShellRenderDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.Bool("signed_in", user != nil)))
	}()
	nav := navigation.Resolve(c.Request.URL.Path, user, navigation.SidebarGroups)

	data := models.LayoutTempl{
		Title:         nav.Title,
		User:          user,
		Nav:           nav,
		Notifications: models.NotificationSummary{Recent: []models.Notification{}},
		QuickStats:    []models.QuickStat{},
		Content:       content,
	}
	if user == nil {
		return data
	}

	var g errgroup.Group
	g.Go(func() error {
		summary, err := h.Notifications.Summary(ctx, user.ID)
		if err != nil {
			h.degraded(ctx, "notifications", err)
			return nil
		}
		data.Notifications = summary
		return nil
	})
	g.Go(func() error {
		stats, err := h.Overview.QuickStats(ctx, user.ID, h.Now())
		if err != nil {
			h.degraded(ctx, "quick_stats", err)
			return nil
		}
		data.QuickStats = stats
		return nil
	})
	_ = g.Wait()
	return data
}

func (h *BaseHandler) degraded(ctx context.Context, part string, err error) {
	h.Logger.Warn("Shell data unavailable, rendering without it", zap.String("part", part), zap.Error(err))
	metrics.Get().ShellDegradedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("part", part)))
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
}

// RenderPage renders the full shell, or only the content for htmx requests.
func (h *BaseHandler) RenderPage(c *gin.Context, content templ.Component) {
	if c.GetHeader("HX-Request") == "true" {
		h.Render(c, http.StatusOK, content)
		return
	}
	h.Render(c, http.StatusOK, pages.LayoutPage(h.NewLayoutData(c, content)))
}
