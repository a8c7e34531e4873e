package dashboard

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/domain"
	"github.com/FACorreiaa/facturation-pro/internal/app/middleware"
	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
	"github.com/FACorreiaa/facturation-pro/internal/app/pages"
)

const defaultPath = "/dashboard"

type Handler struct {
	base   *domain.BaseHandler
	logger *zap.Logger
}

func NewHandler(base *domain.BaseHandler, logger *zap.Logger) *Handler {
	return &Handler{base: base, logger: logger}
}

// Section serves /dashboard and everything below it. Sections without a
// dedicated page render the placeholder inside the shell.
func (h *Handler) Section(c *gin.Context) {
	path := c.Request.URL.Path
	h.logger.Debug("Rendering dashboard section", zap.String("path", path))
	h.base.RenderPage(c, pages.SectionPage(navigation.ResolvePageTitle(path), path))
}

// Navigation serves GET /api/navigation?path=... with the resolved shell state.
func (h *Handler) Navigation(c *gin.Context) {
	path := c.DefaultQuery("path", defaultPath)
	if !strings.HasPrefix(path, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path must be absolute"})
		return
	}

	state := navigation.Resolve(path, middleware.GetUserFromContext(c), navigation.SidebarGroups)
	c.JSON(http.StatusOK, state)
}
