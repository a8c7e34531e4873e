package overview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

const statsTTL = time.Minute

type Service interface {
	// QuickStats returns the sidebar figures for the month containing now.
	QuickStats(ctx context.Context, userID string, now time.Time) ([]models.QuickStat, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
	cache  *cache.Cache
}

func NewService(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  cache.New(statsTTL, 5*statsTTL),
	}
}

func (s *ServiceImpl) QuickStats(ctx context.Context, userID string, now time.Time) ([]models.QuickStat, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return []models.QuickStat{}, nil
	}

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	key := userID + ":" + from.Format("2006-01")
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.QuickStat), nil
	}

	totals, err := s.repo.InvoiceTotals(ctx, id, from, to)
	if err != nil {
		s.logger.Warn("Failed to load invoice totals", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("quick stats: %w", err)
	}

	stats := BuildQuickStats(totals)
	s.cache.Set(key, stats, cache.DefaultExpiration)
	return stats, nil
}

// BuildQuickStats turns raw totals into the sidebar cards, in display order.
func BuildQuickStats(totals models.InvoiceTotals) []models.QuickStat {
	return []models.QuickStat{
		{Label: "Chiffre du mois", Value: FormatEuros(totals.MonthRevenue), Icon: "dollar-sign"},
		{Label: "En attente", Value: FormatInvoiceCount(totals.PendingInvoices), Icon: "clock"},
		{Label: "Payées", Value: FormatInvoiceCount(totals.PaidInvoices), Icon: "check-circle"},
	}
}
