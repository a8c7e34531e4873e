package overview

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/observability/metrics"
	database "github.com/FACorreiaa/facturation-pro/internal/db"
)

var _ Repository = (*PostgresRepository)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	// InvoiceTotals aggregates the user's invoices. Revenue and paid count cover
	// [from, to); the pending count covers every open invoice.
	InvoiceTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) (models.InvoiceTotals, error)
}

type PostgresRepository struct {
	logger *zap.Logger
	db     database.DB
}

func NewPostgresRepository(db database.DB, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{logger: logger, db: db}
}

func (r *PostgresRepository) InvoiceTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) (models.InvoiceTotals, error) {
	ctx, span := otel.Tracer("OverviewRepo").Start(ctx, "PostgresRepository.InvoiceTotals")
	defer span.End()

	query, args, err := psql.
		Select().
		Column(sq.Expr("COALESCE(SUM(amount) FILTER (WHERE status = 'paid' AND paid_at >= ? AND paid_at < ?), 0)::text", from, to)).
		Column("COUNT(*) FILTER (WHERE status IN ('pending', 'overdue'))").
		Column(sq.Expr("COUNT(*) FILTER (WHERE status = 'paid' AND paid_at >= ? AND paid_at < ?)", from, to)).
		From("invoices").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.InvoiceTotals{}, fmt.Errorf("building invoice totals query: %w", err)
	}

	start := time.Now()
	var (
		revenue string
		totals  models.InvoiceTotals
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&revenue, &totals.PendingInvoices, &totals.PaidInvoices)
	metrics.RecordDBQuery(ctx, "invoices.totals", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Query failed")
		r.logger.Error("Error loading invoice totals", zap.Error(err), zap.String("userID", userID.String()))
		return models.InvoiceTotals{}, fmt.Errorf("database error loading invoice totals: %w", err)
	}

	totals.MonthRevenue, err = decimal.NewFromString(revenue)
	if err != nil {
		return models.InvoiceTotals{}, fmt.Errorf("parsing revenue %q: %w", revenue, err)
	}
	return totals, nil
}
