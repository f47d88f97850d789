package ports

import (
	"context"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// SessionRepository persists the current session under one durable key so
// it survives restarts. Load returns (nil, nil) when nothing is persisted.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Load(ctx context.Context) (*domain.Session, error)
	Clear(ctx context.Context) error
}
