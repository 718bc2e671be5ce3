package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hrive/portal-backend/internal/core/domain"
	"github.com/hrive/portal-backend/internal/core/ports"
	"github.com/hrive/portal-backend/internal/pkg/password"
)

// SeedUser is one of the fixed accounts created at startup, one per role.
type SeedUser struct {
	Email    string
	Password string
	Role     string
}

// SeedUsers returns the four fixed seed identities. A fresh slice each call
// so callers cannot mutate the canonical set.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{Email: "admin@hrive.com", Password: "admin123", Role: domain.RoleAdmin},
		{Email: "hr@hrive.com", Password: "hr12345", Role: domain.RoleHR},
		{Email: "manager@hrive.com", Password: "manager123", Role: domain.RoleManager},
		{Email: "employee@hrive.com", Password: "employee123", Role: domain.RoleEmployee},
	}
}

// EnsureSeedUsers inserts each seed account that does not already exist,
// checked by email. Repeated runs against a populated store perform only
// lookups, which keeps startup idempotent.
func EnsureSeedUsers(ctx context.Context, repo ports.UserRepository, log zerolog.Logger) error {
	for _, seed := range SeedUsers() {
		_, err := repo.FindByEmail(ctx, seed.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := password.Hash(seed.Password)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, &domain.User{
			Email:        seed.Email,
			PasswordHash: hash,
			Role:         seed.Role,
		}); err != nil {
			// Another instance may have seeded the same account between
			// our lookup and insert; that still counts as present.
			if errors.Is(err, domain.ErrUserExists) {
				continue
			}
			return err
		}
		log.Info().Str("email", seed.Email).Str("role", seed.Role).Msg("seed user created")
	}
	return nil
}
