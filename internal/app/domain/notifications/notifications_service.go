package notifications

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

const (
	RecentLimit = 5
	summaryTTL  = 30 * time.Second
)

type Service interface {
	// Summary returns the unread count and latest notifications. Anonymous or
	// malformed user ids yield an empty summary.
	Summary(ctx context.Context, userID string) (models.NotificationSummary, error)
	MarkAllRead(ctx context.Context, userID string) error
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
		cache:  cache.New(summaryTTL, 2*summaryTTL),
	}
}

func emptySummary() models.NotificationSummary {
	return models.NotificationSummary{Recent: []models.Notification{}}
}

func (s *ServiceImpl) Summary(ctx context.Context, userID string) (models.NotificationSummary, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return emptySummary(), nil
	}

	if cached, found := s.cache.Get(userID); found {
		return cached.(models.NotificationSummary), nil
	}

	l := s.logger.With(zap.String("method", "Summary"), zap.String("userID", userID))

	unread, err := s.repo.CountUnread(ctx, id)
	if err != nil {
		l.Warn("Failed to count unread notifications", zap.Error(err))
		return emptySummary(), fmt.Errorf("notification summary: %w", err)
	}
	recent, err := s.repo.ListRecent(ctx, id, RecentLimit)
	if err != nil {
		l.Warn("Failed to list notifications", zap.Error(err))
		return emptySummary(), fmt.Errorf("notification summary: %w", err)
	}

	summary := models.NotificationSummary{Unread: unread, Recent: recent}
	s.cache.Set(userID, summary, cache.DefaultExpiration)
	return summary, nil
}

func (s *ServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", models.ErrBadRequest)
	}

	changed, err := s.repo.MarkAllRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	s.cache.Delete(userID)

	s.logger.Debug("Notifications marked read", zap.String("userID", userID), zap.Int64("changed", changed))
	return nil
}
