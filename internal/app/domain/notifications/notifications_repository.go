package notifications

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/observability/metrics"
	database "github.com/FACorreiaa/facturation-pro/internal/db"
)

var _ Repository = (*PostgresRepository)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	// MarkAllRead stamps every unread notification of the user and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PostgresRepository struct {
	logger *zap.Logger
	db     database.DB
}

func NewPostgresRepository(db database.DB, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{logger: logger, db: db}
}

func (r *PostgresRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error) {
	ctx, span := otel.Tracer("NotificationsRepo").Start(ctx, "PostgresRepository.ListRecent")
	defer span.End()

	query, args, err := psql.
		Select("id", "user_id", "title", "detail", "created_at", "read_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building notifications query: %w", err)
	}

	start := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery(ctx, "notifications.list_recent", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Query failed")
		r.logger.Error("Error listing notifications", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("database error listing notifications: %w", err)
	}
	defer rows.Close()

	list := make([]models.Notification, 0, limit)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Detail, &n.CreatedAt, &n.ReadAt); err != nil {
			metrics.RecordDBQuery(ctx, "notifications.list_recent", start, err)
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		list = append(list, n)
	}
	err = rows.Err()
	metrics.RecordDBQuery(ctx, "notifications.list_recent", start, err)
	if err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}

	span.SetAttributes(attribute.Int("notifications.count", len(list)))
	return list, nil
}

func (r *PostgresRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, span := otel.Tracer("NotificationsRepo").Start(ctx, "PostgresRepository.CountUnread")
	defer span.End()

	query, args, err := psql.
		Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"user_id": userID, "read_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building unread count query: %w", err)
	}

	start := time.Now()
	var count int
	err = r.db.QueryRow(ctx, query, args...).Scan(&count)
	metrics.RecordDBQuery(ctx, "notifications.count_unread", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Query failed")
		return 0, fmt.Errorf("database error counting unread notifications: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	ctx, span := otel.Tracer("NotificationsRepo").Start(ctx, "PostgresRepository.MarkAllRead")
	defer span.End()

	query, args, err := psql.
		Update("notifications").
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "read_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building mark read query: %w", err)
	}

	start := time.Now()
	tag, err := r.db.Exec(ctx, query, args...)
	metrics.RecordDBQuery(ctx, "notifications.mark_all_read", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Update failed")
		r.logger.Error("Error marking notifications read", zap.Error(err), zap.String("userID", userID.String()))
		return 0, fmt.Errorf("database error marking notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
