// Package server - jwt.go provides session token signing and validation.
package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
)

// tokenIssuer is the iss claim on every session token.
const tokenIssuer = "ats-analyzer"

// Claims are the JWT claims of an anonymous draft session.
type Claims struct {
	OwnerID uuid.UUID `json:"owner_id"`
	jwt.RegisteredClaims
}

// GetOwnerID implements middleware.OwnerIDGetter.
func (c *Claims) GetOwnerID() uuid.UUID {
	return c.OwnerID
}

// JWTService signs and validates session tokens with HS256.
type JWTService struct {
	config config.JWTConfig
	now    func() time.Time
}

// NewJWTService returns a service for cfg after validating it.
func NewJWTService(cfg config.JWTConfig) (*JWTService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &JWTService{config: cfg, now: time.Now}, nil
}

// Session holds a freshly issued token.
type Session struct {
	OwnerID   uuid.UUID
	Token     string
	ExpiresAt time.Time
}

// NewSession issues a token for a new random owner.
func (s *JWTService) NewSession() (*Session, error) {
	owner := uuid.New()
	token, expiresAt, err := s.GenerateToken(owner)
	if err != nil {
		return nil, err
	}
	return &Session{OwnerID: owner, Token: token, ExpiresAt: expiresAt}, nil
}

// GenerateToken signs a token for owner and returns it with its expiry.
func (s *JWTService) GenerateToken(owner uuid.UUID) (string, time.Time, error) {
	now := s.now().Truncate(time.Second)
	expiresAt := now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)

	claims := &Claims{
		OwnerID: owner,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   owner.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, fmt.Errorf("invalid token signature: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("malformed token: %w", err)
	default:
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.OwnerID == uuid.Nil {
		return nil, errors.New("token has no owner")
	}
	return claims, nil
}

// AsTokenValidator adapts the service to middleware.TokenValidator.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return tokenValidator{s}
}

type tokenValidator struct {
	service *JWTService
}

func (v tokenValidator) ValidateToken(tokenString string) (middleware.OwnerIDGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
