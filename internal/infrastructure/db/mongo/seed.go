package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// demoAccounts are the three credentials the prototype ships with. The
// citizen starts with a 120-point balance.
var demoAccounts = []struct {
	name     string
	email    string
	password string
	role     domain.Role
	points   int
}{
	{"Rohan Kumar", "citizen@ks.com", "123", domain.RoleCitizen, 120},
	{"Ops Officer", "staff@ks.com", "123", domain.RoleStaff, 0},
	{"System Admin", "admin@ks.com", "123", domain.RoleAdmin, 0},
}

// SeedDemoAccounts inserts the demo credentials, skipping any that already
// exist. Intended for development environments only.
func SeedDemoAccounts(ctx context.Context, repo *AuthRepository) error {
	now := time.Now().UTC()
	for _, d := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.email, err)
		}

		_, err = repo.Create(ctx, &domain.Account{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
			PointBalance: d.points,
			AvatarRef:    fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", d.name),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed %s: %w", d.email, err)
		}
	}
	return nil
}
