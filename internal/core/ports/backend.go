package ports

import (
	"context"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// Backend is the remote data boundary. Today it is implemented by a mock
// that answers from fixtures after a simulated latency; swapping in a real
// API client must not touch any caller. Every call respects context
// cancellation so a torn-down caller never receives a stale result.
type Backend interface {
	FetchHistory(ctx context.Context, userID string) ([]domain.DisposalTransaction, error)
	SubmitWaste(ctx context.Context, userID string, category domain.WasteCategory, weightKg float64) (*domain.DisposalTransaction, error)
	ClassifyImage(ctx context.Context, imageRef string) (*domain.Classification, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Rewards(ctx context.Context) ([]domain.Reward, error)
	CollectionSchedule(ctx context.Context, area string) ([]domain.PickupSlot, error)
	CommunityEvents(ctx context.Context) ([]domain.CommunityEvent, error)
	CityStats(ctx context.Context, city string) (*domain.CityStats, error)
}
