package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cloud-panel/admin-api/internal/core/domain"
	"github.com/cloud-panel/admin-api/internal/core/ports"
)

// AuthService verifies operator credentials and issues tokens.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, hasher ports.PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, hasher: hasher, logger: logger}
}

// Login checks the submitted credentials against the directory and
// issues a token on success. An unknown email and a wrong password both
// yield domain.ErrInvalidCredentials so the response never reveals
// whether the email exists.
func (s *AuthService) Login(ctx context.Context, login, password string) (*ports.LoginResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("operator logged in")

	return &ports.LoginResult{
		Token:     token,
		User:      user,
		ExpiresIn: s.tokens.TTL(),
	}, nil
}
