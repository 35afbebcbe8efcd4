package domain

import (
	"errors"
	"time"
)

// Role is one of a closed set of authorization levels. Comparison is
// equality only: an administrator does not implicitly satisfy an
// editor-only gate.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
	RoleGuest         Role = "guest"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleEditor, RoleGuest:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrValidation = errors.New("invalid input")
var ErrPasswordMismatch = errors.New("old password does not match")

// User models a record in the user directory. PasswordHash is never
// serialized; every read path relies on the `json:"-"` projection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the decoded {user id, role} pair attached to a request
// after successful token verification. It lives for the request only.
type Identity struct {
	UserID string
	Role   Role
}
