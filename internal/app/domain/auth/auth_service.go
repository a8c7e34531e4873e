package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
)

var _ AuthService = (*AuthServiceImpl)(nil)

const minPasswordLength = 8

// AuthService signs users in and out of the dashboard.
type AuthService interface {
	// SignIn checks credentials and returns the user snapshot with a signed token.
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	// SignUp creates the account and signs it in.
	SignUp(ctx context.Context, params models.SignUpParams) (*models.User, string, error)
}

type AuthServiceImpl struct {
	logger *zap.Logger
	repo   AuthRepo
	jwt    *JWTService
}

func NewAuthService(repo AuthRepo, jwtService *JWTService, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{logger: logger, repo: repo, jwt: jwtService}
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	l := s.logger.With(zap.String("method", "SignIn"), zap.String("email", email))
	l.Debug("Attempting sign in")

	ctx, span := otel.Tracer("AuthService").Start(ctx, "AuthService.SignIn")
	defer span.End()

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", models.ErrValidation)
	}

	account, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			l.Warn("Unknown email")
			return nil, "", fmt.Errorf("sign in: %w", models.ErrInvalidCredentials)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Lookup failed")
		return nil, "", fmt.Errorf("sign in: %w", err)
	}

	// Don't reveal whether the email or the password was wrong.
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		l.Warn("Password comparison failed", zap.String("userID", account.ID.String()))
		return nil, "", fmt.Errorf("sign in: %w", models.ErrInvalidCredentials)
	}

	user := toUser(account)
	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		l.Error("Failed to generate token", zap.Error(err))
		return nil, "", fmt.Errorf("app error generating token: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	l.Info("Sign in successful", zap.String("userID", user.ID))
	return user, token, nil
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, params models.SignUpParams) (*models.User, string, error) {
	l := s.logger.With(zap.String("method", "SignUp"), zap.String("email", params.Email))
	l.Debug("Attempting sign up")

	ctx, span := otel.Tracer("AuthService").Start(ctx, "AuthService.SignUp", trace.WithAttributes(
		attribute.String("email", params.Email),
	))
	defer span.End()

	params.FirstName = strings.TrimSpace(params.FirstName)
	params.LastName = strings.TrimSpace(params.LastName)
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))
	if err := validateSignUp(params); err != nil {
		l.Warn("Invalid sign up request", zap.Error(err))
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		l.Error("Failed to hash password", zap.Error(err))
		return nil, "", fmt.Errorf("failed to process password: %w", err)
	}

	account := &models.UserAuth{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: string(hashed),
	}
	id, err := s.repo.CreateUser(ctx, account)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Create user failed")
		return nil, "", fmt.Errorf("sign up: %w", err)
	}
	account.ID = id

	user := toUser(account)
	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		l.Error("Failed to generate token", zap.Error(err))
		return nil, "", fmt.Errorf("app error generating token: %w", err)
	}

	l.Info("Sign up successful", zap.String("userID", user.ID))
	return user, token, nil
}

func validateSignUp(params models.SignUpParams) error {
	if params.FirstName == "" {
		return fmt.Errorf("first name is required: %w", models.ErrValidation)
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return fmt.Errorf("invalid email address: %w", models.ErrValidation)
	}
	if len(params.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, models.ErrValidation)
	}
	return nil
}

func toUser(account *models.UserAuth) *models.User {
	return &models.User{
		ID:        account.ID.String(),
		FirstName: account.FirstName,
		LastName:  account.LastName,
		FullName:  strings.TrimSpace(account.FirstName + " " + account.LastName),
		Email:     account.Email,
		AvatarURL: account.AvatarURL,
	}
}
