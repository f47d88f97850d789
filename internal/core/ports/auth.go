package ports

import (
	"context"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// AuthService resolves credentials into a fully-formed session.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
}

// AuthRepository is the persistence interface for the identity directory.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
