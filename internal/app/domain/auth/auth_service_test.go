package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/pkg/config"
)

const testSecret = "test-secret-key-that-is-long-enough-32"

// MockAuthRepo is a mock implementation of the AuthRepo interface
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.UserAuth, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) CreateUser(ctx context.Context, user *models.UserAuth) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newTestJWT() *JWTService {
	return NewJWTService(config.JWTConfig{SecretKey: testSecret, TokenExpiration: time.Hour}, zap.NewNop())
}

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.UserAuth{
		ID:           uuid.New(),
		FirstName:    "Ana",
		LastName:     "Lee",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAuthRepo)
		jwtSvc := newTestJWT()
		service := NewAuthService(repo, jwtSvc, zap.NewNop())
		repo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(account, nil).Once()

		user, token, err := service.SignIn(context.Background(), "ana@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, account.ID.String(), user.ID)
		assert.Equal(t, "Ana Lee", user.FullName)

		claims, err := jwtSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		repo.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockAuthRepo)
		service := NewAuthService(repo, newTestJWT(), zap.NewNop())
		repo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(account, nil).Once()

		_, _, err := service.SignIn(context.Background(), "ana@example.com", "nope")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockAuthRepo)
		service := NewAuthService(repo, newTestJWT(), zap.NewNop())
		repo.On("GetUserByEmail", mock.Anything, "who@example.com").Return(nil, models.ErrNotFound).Once()

		_, _, err := service.SignIn(context.Background(), "who@example.com", "password123")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := new(MockAuthRepo)
		service := NewAuthService(repo, newTestJWT(), zap.NewNop())
		dbErr := errors.New("connection reset")
		repo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(nil, dbErr).Once()

		_, _, err := service.SignIn(context.Background(), "ana@example.com", "password123")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("MissingFields", func(t *testing.T) {
		repo := new(MockAuthRepo)
		service := NewAuthService(repo, newTestJWT(), zap.NewNop())

		_, _, err := service.SignIn(context.Background(), " ", "")
		assert.ErrorIs(t, err, models.ErrValidation)
		repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})
}

func TestSignUp(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockAuthRepo)
		service := NewAuthService(repo, newTestJWT(), zap.NewNop())
		id := uuid.New()

		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.UserAuth) bool {
			return u.Email == "ana@example.com" && u.FirstName == "Ana" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
		})).Return(id, nil).Once()

		user, token, err := service.SignUp(context.Background(), models.SignUpParams{
			FirstName: " Ana ", LastName: "Lee", Email: " Ana@Example.com ", Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, id.String(), user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("Validation", func(t *testing.T) {
		tests := []struct {
			name   string
			params models.SignUpParams
		}{
			{"missing first name", models.SignUpParams{Email: "a@example.com", Password: "password123"}},
			{"bad email", models.SignUpParams{FirstName: "Ana", Email: "not-an-email", Password: "password123"}},
			{"short password", models.SignUpParams{FirstName: "Ana", Email: "a@example.com", Password: "short"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockAuthRepo)
				service := NewAuthService(repo, newTestJWT(), zap.NewNop())
				_, _, err := service.SignUp(context.Background(), tt.params)
				assert.ErrorIs(t, err, models.ErrValidation)
				repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockAuthRepo)
		service := NewAuthService(repo, newTestJWT(), zap.NewNop())
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(uuid.Nil, models.ErrConflict).Once()

		_, _, err := service.SignUp(context.Background(), models.SignUpParams{
			FirstName: "Ana", Email: "ana@example.com", Password: "password123",
		})
		assert.ErrorIs(t, err, models.ErrConflict)
	})
}
