package ports

import (
	"context"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

// UserUpdate carries the mutable directory fields for an update. Empty
// fields are left untouched by the repository.
type UserUpdate struct {
	Name  string
	Email string
	Role  domain.Role
}

// UserRepository defines persistence operations for the user directory.
// Email uniqueness is enforced by the storage layer; a violation surfaces
// as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches the stored email exactly (case-sensitive).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users ordered by name.
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
