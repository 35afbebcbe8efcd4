package ports

import "github.com/cloud-panel/admin-api/internal/core/domain"

// TokenService issues and verifies signed, time-bound identity tokens.
type TokenService interface {
	Issue(userID string, role domain.Role) (string, error)
	// Verify returns domain.ErrInvalidToken for any failure — bad
	// signature, malformed payload, or elapsed expiry — without
	// distinguishing the cases.
	Verify(token string) (domain.Identity, error)
	// TTL is the fixed token lifetime configured at startup.
	TTL() int64
}
