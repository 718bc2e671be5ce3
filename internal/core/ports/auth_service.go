package ports

import (
	"context"

	"github.com/hrive/portal-backend/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, email, password, role string) (*domain.User, error)
}
