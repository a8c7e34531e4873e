package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/observability/metrics"
	database "github.com/FACorreiaa/facturation-pro/internal/db"
)

var _ AuthRepo = (*PostgresAuthRepo)(nil)

const uniqueViolation = "23505"

type AuthRepo interface {
	// GetUserByEmail fetches the account row, password hash included.
	GetUserByEmail(ctx context.Context, email string) (*models.UserAuth, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error)
	// CreateUser stores a new account with an already hashed password and returns its id.
	CreateUser(ctx context.Context, user *models.UserAuth) (uuid.UUID, error)
}

type PostgresAuthRepo struct {
	logger *zap.Logger
	db     database.DB
}

func NewPostgresAuthRepo(db database.DB, logger *zap.Logger) *PostgresAuthRepo {
	return &PostgresAuthRepo{
		logger: logger,
		db:     db,
	}
}

func (r *PostgresAuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.UserAuth, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "PostgresAuthRepo.GetUserByEmail", trace.WithAttributes(
		attribute.String("db.system.name", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	start := time.Now()
	var user models.UserAuth
	query := `SELECT id, first_name, last_name, email, avatar_url, password_hash FROM users WHERE lower(email) = lower($1)`
	err := r.db.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.AvatarURL, &user.PasswordHash,
	)
	metrics.RecordDBQuery(ctx, "users.get_by_email", start, ignoreNoRows(err))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s not found: %w", email, models.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database error")
		r.logger.Error("Error fetching user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}
	return &user, nil
}

func (r *PostgresAuthRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "PostgresAuthRepo.GetUserByID", trace.WithAttributes(
		attribute.String("db.system.name", "postgresql"),
		attribute.String("db.operation.name", "SELECT"),
	))
	defer span.End()

	start := time.Now()
	var user models.UserAuth
	query := `SELECT id, first_name, last_name, email, avatar_url, password_hash FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.AvatarURL, &user.PasswordHash,
	)
	metrics.RecordDBQuery(ctx, "users.get_by_id", start, ignoreNoRows(err))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with ID %s not found: %w", userID, models.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database error")
		r.logger.Error("Error fetching user by ID", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("database error fetching user by ID: %w", err)
	}
	return &user, nil
}

func (r *PostgresAuthRepo) CreateUser(ctx context.Context, user *models.UserAuth) (uuid.UUID, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "PostgresAuthRepo.CreateUser", trace.WithAttributes(
		attribute.String("db.system.name", "postgresql"),
		attribute.String("db.operation.name", "INSERT"),
	))
	defer span.End()

	start := time.Now()
	var id uuid.UUID
	query := `INSERT INTO users (first_name, last_name, email, avatar_url, password_hash)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.AvatarURL, user.PasswordHash,
	).Scan(&id)
	metrics.RecordDBQuery(ctx, "users.create", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database error")
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		r.logger.Error("Error inserting user", zap.Error(err), zap.String("email", user.Email))
		return uuid.Nil, fmt.Errorf("database error creating user: %w", err)
	}

	span.SetStatus(codes.Ok, "User created")
	r.logger.Info("User created", zap.String("userID", id.String()))
	return id, nil
}

func ignoreNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}
