package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/domain"
	"github.com/FACorreiaa/facturation-pro/internal/app/middleware"
	"github.com/FACorreiaa/facturation-pro/internal/app/models"
)

type fakeNotifications struct{}

func (fakeNotifications) Summary(context.Context, string) (models.NotificationSummary, error) {
	return models.NotificationSummary{Unread: 1, Recent: []models.Notification{{Title: "Nouveau paiement reçu"}}}, nil
}

func (fakeNotifications) MarkAllRead(context.Context, string) error { return nil }

type fakeOverview struct{}

func (fakeOverview) QuickStats(context.Context, string, time.Time) ([]models.QuickStat, error) {
	return []models.QuickStat{{Label: "Chiffre du mois", Value: "2 450 €", Icon: "dollar-sign"}}, nil
}

func newRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := domain.NewBaseHandler(zap.NewNop(), fakeNotifications{}, fakeOverview{})
	h := NewHandler(base, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			middleware.SetUser(c, user)
		}
		c.Next()
	})
	r.GET("/dashboard", h.Section)
	r.GET("/dashboard/:section", h.Section)
	r.GET("/dashboard/:section/*rest", h.Section)
	r.GET("/api/navigation", h.Navigation)
	return r
}

func get(r http.Handler, path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSection(t *testing.T) {
	user := &models.User{ID: "u1", FirstName: "Ana", LastName: "Lee", FullName: "Ana Lee"}
	r := newRouter(user)

	tests := []struct {
		path   string
		title  string
		active []string
	}{
		{"/dashboard", "Tableau de bord", []string{"/dashboard"}},
		{"/dashboard/clients", "Clients", []string{"/dashboard", "/dashboard/clients"}},
		{"/dashboard/invoices/create", "Tableau de bord", []string{"/dashboard", "/dashboard/invoices"}},
		{"/dashboard/exports", "Tableau de bord", []string{"/dashboard", "/dashboard/exports"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
			require.NoError(t, err)
			assert.Equal(t, tt.title, doc.Find("#page-title").Text())

			var active []string
			doc.Find(`#sidebar a[data-active="true"]`).Each(func(_ int, s *goquery.Selection) {
				href, _ := s.Attr("href")
				active = append(active, href)
			})
			assert.Equal(t, tt.active, active)
			assert.Equal(t, "1", doc.Find(".notification-count").Text())
			assert.Equal(t, "2 450 €", doc.Find(".quick-stat .stat-value").Text())
		})
	}
}

func TestSection_HTMX(t *testing.T) {
	w := get(newRouter(&models.User{ID: "u1"}), "/dashboard/payments", "HX-Request", "true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<html")
	assert.Contains(t, w.Body.String(), `data-path="/dashboard/payments"`)
}

func TestNavigation(t *testing.T) {
	r := newRouter(&models.User{ID: "u1", FirstName: "Ana", LastName: "Lee", FullName: "Ana Lee"})

	t.Run("resolves the requested path", func(t *testing.T) {
		w := get(r, "/api/navigation?path=/dashboard/reports")
		require.Equal(t, http.StatusOK, w.Code)

		var state models.NavigationState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, "Rapports", state.Title)
		assert.Equal(t, "AL", state.User.Initials)
		require.Len(t, state.Groups, 2)

		var active []string
		for _, g := range state.Groups {
			for _, e := range g.Entries {
				if e.Active {
					active = append(active, e.Path)
				}
			}
		}
		assert.Equal(t, []string{"/dashboard", "/dashboard/reports"}, active)
	})

	t.Run("defaults to the dashboard", func(t *testing.T) {
		w := get(r, "/api/navigation")
		var state models.NavigationState
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, "/dashboard", state.Path)
	})

	t.Run("rejects relative paths", func(t *testing.T) {
		w := get(r, "/api/navigation?path=dashboard")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
