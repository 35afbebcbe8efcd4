package ports

import (
	"context"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a directory entry.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput carries the admin-editable fields. Empty fields are
// left unchanged.
type UpdateUserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// UserService exposes the role-gated directory operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	// EnsureAdmin seeds an initial administrator when the directory is
	// empty. Called once at startup.
	EnsureAdmin(ctx context.Context, email, password string) error
}
