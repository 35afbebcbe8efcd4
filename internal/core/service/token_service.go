package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256 JWTs carrying {user_id, role}.
// The signing secret is injected once at startup and never mutated, so
// concurrent use needs no synchronization.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given user. Multiple live tokens
// per user may coexist; nothing is persisted.
func (s *TokenService) Issue(userID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and decodes the identity. Every
// failure mode collapses to domain.ErrInvalidToken so callers cannot
// tell a forged token from an expired one.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if userID == "" || !role.Valid() {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{UserID: userID, Role: role}, nil
}

// TTL returns the configured token lifetime in seconds.
func (s *TokenService) TTL() int64 {
	return int64(s.ttl / time.Second)
}
