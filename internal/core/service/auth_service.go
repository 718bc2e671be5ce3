package service

import (
	"context"
	"errors"

	"github.com/hrive/portal-backend/internal/core/domain"
	"github.com/hrive/portal-backend/internal/core/ports"
	"github.com/hrive/portal-backend/internal/pkg/password"
)

// AuthService implements login and signup over a single user repository.
type AuthService struct {
	repo ports.UserRepository
}

func NewAuthService(repo ports.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login verifies credentials and returns the stored user. An unknown email
// and a wrong password both come back as domain.ErrInvalidCredentials so the
// response cannot be used to probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*domain.User, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Signup creates a new account. Role defaults to employee and must otherwise
// belong to the closed role set; validation happens before any store access.
// The existence check and insert are not atomic, so a concurrent signup that
// wins the race surfaces from Create as the same duplicate condition.
func (s *AuthService) Signup(ctx context.Context, email, pass, role string) (*domain.User, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrMissingCredentials
	}
	if role == "" {
		role = domain.DefaultRole
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}
