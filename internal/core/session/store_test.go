package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

type memRepo struct {
	saved   *domain.Session
	saveErr error
}

func (r *memRepo) Save(_ context.Context, sess *domain.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copy := *sess
	r.saved = &copy
	return nil
}

func (r *memRepo) Load(_ context.Context) (*domain.Session, error) {
	if r.saved == nil {
		return nil, nil
	}
	copy := *r.saved
	return &copy, nil
}

func (r *memRepo) Clear(_ context.Context) error {
	r.saved = nil
	return nil
}

func citizen() domain.Session {
	return domain.Session{
		ID:           "u1",
		Name:         "Rohan Kumar",
		Email:        "citizen@ks.com",
		Role:         domain.RoleCitizen,
		PointBalance: 120,
	}
}

func TestStore_LoginReplacesAndPersists(t *testing.T) {
	repo := &memRepo{}
	store := NewStore(repo, zerolog.Nop())
	ctx := context.Background()

	store.Login(ctx, citizen())
	store.Login(ctx, citizen())

	cur, ok := store.Current()
	if !ok {
		t.Fatalf("expected active session")
	}
	if cur != citizen() {
		t.Fatalf("double login mutated the identity: %+v", cur)
	}
	if repo.saved == nil || *repo.saved != citizen() {
		t.Fatalf("session not persisted: %+v", repo.saved)
	}
}

func TestStore_LogoutClearsAndIsIdempotent(t *testing.T) {
	repo := &memRepo{}
	store := NewStore(repo, zerolog.Nop())
	ctx := context.Background()

	store.Login(ctx, citizen())
	store.Logout(ctx)
	store.Logout(ctx) // second call must be a no-op

	if _, ok := store.Current(); ok {
		t.Fatalf("expected absent session after logout")
	}
	if repo.saved != nil {
		t.Fatalf("persisted session not cleared")
	}

	// AdjustBalance after logout is a no-op without error.
	balance, err := store.AdjustBalance(ctx, 50)
	if err != nil {
		t.Fatalf("adjust on absent session returned error: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected zero balance, got %d", balance)
	}
	if _, ok := store.Current(); ok {
		t.Fatalf("adjust must not create a partial session")
	}
}

func TestStore_AdjustBalance(t *testing.T) {
	repo := &memRepo{}
	store := NewStore(repo, zerolog.Nop())
	ctx := context.Background()

	store.Login(ctx, citizen())

	balance, err := store.AdjustBalance(ctx, 20)
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if balance != 140 {
		t.Fatalf("expected 140, got %d", balance)
	}

	// Overdraw is rejected, never silently ignored.
	balance, err = store.AdjustBalance(ctx, -500)
	if !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if balance != 140 {
		t.Fatalf("rejected adjustment must leave balance untouched, got %d", balance)
	}

	cur, _ := store.Current()
	if cur.PointBalance != 140 {
		t.Fatalf("stored balance changed after rejection: %d", cur.PointBalance)
	}
	if repo.saved.PointBalance != 140 {
		t.Fatalf("persisted balance out of sync: %d", repo.saved.PointBalance)
	}
}

func TestStore_PersistFailureIsNonFatal(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("disk full")}
	store := NewStore(repo, zerolog.Nop())
	ctx := context.Background()

	store.Login(ctx, citizen())

	cur, ok := store.Current()
	if !ok || cur.PointBalance != 120 {
		t.Fatalf("in-memory session must survive a persistence failure: %+v", cur)
	}

	if _, err := store.AdjustBalance(ctx, 10); err != nil {
		t.Fatalf("adjust must not surface persistence errors: %v", err)
	}
}

func TestStore_Restore(t *testing.T) {
	repo := &memRepo{}
	ctx := context.Background()

	first := NewStore(repo, zerolog.Nop())
	first.Login(ctx, citizen())

	second := NewStore(repo, zerolog.Nop())
	second.Restore(ctx)

	cur, ok := second.Current()
	if !ok {
		t.Fatalf("expected restored session")
	}
	if cur != citizen() {
		t.Fatalf("restored session differs: %+v", cur)
	}
}
