package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// OpsClaims are the claims carried by admin API bearer tokens.
type OpsClaims struct {
	Subject string   `json:"sub_name,omitempty"`
	Scope   []string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 ops tokens for the admin surface.
type TokenManager interface {
	GenerateOpsToken(subject string, scope []string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*OpsClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{secret: []byte(secret)}
}

func (tm *tokenManager) GenerateOpsToken(subject string, scope []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := OpsClaims{
		Subject: subject,
		Scope:   scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *tokenManager) ValidateToken(tokenString string) (*OpsClaims, error) {
	claims := &OpsClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
