package ports

import (
	"context"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

// LoginResult is returned on successful authentication. ExpiresIn is the
// token lifetime in seconds, echoed to the client alongside the token.
type LoginResult struct {
	Token     string
	User      *domain.User
	ExpiresIn int64
}

// AuthService verifies submitted credentials and issues tokens.
type AuthService interface {
	Login(ctx context.Context, login, password string) (*LoginResult, error)
}
