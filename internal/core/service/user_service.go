package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloud-panel/admin-api/internal/core/domain"
	"github.com/cloud-panel/admin-api/internal/core/ports"
)

// UserService implements the directory CRUD operations behind the access
// control middleware. A short-lived Redis cache fronts the full listing;
// every mutation invalidates it.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	cache  ports.DirectoryCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, cache ports.DirectoryCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, cache: cache, logger: logger}
}

// List returns every directory entry ordered by name. Password hashes
// are cleared before the records leave the service.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	if s.cache != nil {
		users, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("directory cache read failed")
		} else if hit {
			return users, nil
		}
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, users); err != nil {
			s.logger.Warn().Err(err).Msg("directory cache write failed")
		}
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || !input.Role.Valid() {
		return nil, domain.ErrValidation
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")

	created.PasswordHash = ""
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != "" && !input.Role.Valid() {
		return nil, domain.ErrValidation
	}

	updated, err := s.repo.Update(ctx, id, ports.UserUpdate{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("user_id", id).Msg("user updated")

	updated.PasswordHash = ""
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// ChangePassword replaces the caller's own hash after re-verifying the
// old password. A wrong old password leaves the stored hash untouched.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return domain.ErrValidation
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return domain.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// EnsureAdmin seeds an initial administrator when the directory is
// empty, so a fresh deployment is reachable.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = s.Create(ctx, ports.CreateUserInput{
		Name:     "Admin",
		Email:    email,
		Password: password,
		Role:     domain.RoleAdministrator,
	})
	if err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("email", email).Msg("initial administrator created")
	return nil
}

func (s *UserService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("directory cache invalidation failed")
	}
}
