package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/pkg/config"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "auth_token"

const issuer = "facturation-pro"

// Claims represents the JWT claims
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey  []byte
	expiration time.Duration
	logger     *zap.Logger
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig, logger *zap.Logger) *JWTService {
	return &JWTService{
		secretKey:  []byte(cfg.SecretKey),
		expiration: cfg.TokenExpiration,
		logger:     logger,
	}
}

// Expiration is the lifetime of tokens issued by the service.
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken signs a token for the given user snapshot.
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", fmt.Errorf("cannot sign token without a user id: %w", models.ErrValidation)
	}

	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthenticated)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthenticated)
	}

	return claims, nil
}

// UserFromClaims rebuilds the identity snapshot carried by a token.
func UserFromClaims(claims *Claims) *models.User {
	if claims == nil {
		return nil
	}
	return &models.User{
		ID:        claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		FullName:  strings.TrimSpace(claims.FirstName + " " + claims.LastName),
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
	}
}
