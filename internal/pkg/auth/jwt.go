package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/bekzod/unilib/internal/app/models"
)

// JWT errors
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidFormat  = errors.New("invalid token format")
)

// TokenType distinguishes access tokens from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey       string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	TokenIssuer     string
}

// JWTService issues and validates signed tokens
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content. Subject carries the identity email.
// UniversityID is present only for superadmins.
type Claims struct {
	UserID       int64     `json:"userId"`
	Role         string    `json:"role"`
	UniversityID *int64    `json:"universityId,omitempty"`
	TokenType    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// IssueAccess creates a short-lived access token for the identity.
func (s *JWTService) IssueAccess(identity models.Identity) (string, error) {
	return s.issue(identity, TokenTypeAccess, s.config.AccessTokenExp)
}

// IssueRefresh creates a refresh token marked with type=refresh.
func (s *JWTService) IssueRefresh(identity models.Identity) (string, error) {
	return s.issue(identity, TokenTypeRefresh, s.config.RefreshTokenExp)
}

func (s *JWTService) issue(identity models.Identity, tokenType TokenType, exp time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:       identity.ID,
		Role:         string(identity.Role),
		UniversityID: identity.UniversityID,
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   identity.Email,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// Validate decodes and verifies a token, requiring the given type.
// Signature, expiry, or type mismatches map to ErrInvalidToken /
// ErrExpiredToken; a missing subject claim maps to ErrMalformedToken.
func (s *JWTService) Validate(tokenString string, expectedType TokenType) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMalformedToken
	}

	if claims.TokenType != expectedType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AccessTokenTTL returns the configured access token lifetime in seconds.
func (s *JWTService) AccessTokenTTL() int {
	return int(s.config.AccessTokenExp.Seconds())
}

// RefreshTokenTTL returns the configured refresh token lifetime in seconds.
func (s *JWTService) RefreshTokenTTL() int {
	return int(s.config.RefreshTokenExp.Seconds())
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	// Otherwise just return the entire header value as the token
	return authHeader, nil
}
