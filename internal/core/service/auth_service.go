package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// AuthService implements registration and login against the identity
// directory.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		AvatarRef:    avatarRef(name),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, account)
}

// Login resolves credentials into a fully-formed session plus a signed
// token for the HTTP surface. Unknown accounts and wrong passwords both
// return ErrInvalidCredentials so callers cannot enumerate users.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:           uuid.NewString(),
		Name:         account.Name,
		Email:        account.Email,
		Role:         account.Role,
		PointBalance: account.PointBalance,
		AvatarRef:    account.AvatarRef,
	}

	token, err := s.generateToken(account, sess.ID)
	if err != nil {
		return "", nil, err
	}

	return token, sess, nil
}

func (s *AuthService) generateToken(account *domain.Account, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":        account.ID,
		"session_id": sessionID,
		"name":       account.Name,
		"role":       string(account.Role),
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// avatarRef derives the opaque display-image reference for a new account.
func avatarRef(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", name)
}
