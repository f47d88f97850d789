// Package mockbackend implements the Backend port without any network: it
// answers from fixtures or randomised payloads after a bounded simulated
// latency. It stands in for a real API client until one exists; callers
// must not be able to tell the difference except for the canned data.
package mockbackend

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// Per-call simulated latencies, matching the prototype's delays.
const (
	historyLatency  = 500 * time.Millisecond
	submitLatency   = time.Second
	classifyLatency = 2 * time.Second
	boardLatency    = 600 * time.Millisecond
	rewardsLatency  = 400 * time.Millisecond
	statsLatency    = 800 * time.Millisecond
)

const (
	classifyMinConfidence = 0.75
	classifyMaxConfidence = 0.99
	classifyRewardPoints  = 10
	pointsPerKg           = 10
)

// Backend is the mock implementation of ports.Backend. Calls never fail on
// their own; the only error paths are context cancellation and deadline
// expiry, so a torn-down caller never consumes a stale response.
type Backend struct {
	latencyScale float64

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Backend.
type Option func(*Backend)

// WithLatencyScale multiplies every simulated latency; 0 answers instantly.
func WithLatencyScale(scale float64) Option {
	return func(b *Backend) { b.latencyScale = scale }
}

// WithSeed fixes the random source for reproducible classifications.
func WithSeed(seed int64) Option {
	return func(b *Backend) { b.rng = rand.New(rand.NewSource(seed)) }
}

func New(opts ...Option) *Backend {
	b := &Backend{
		latencyScale: 1.0,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// sleep suspends for the scaled latency or until ctx is done, whichever
// comes first.
func (b *Backend) sleep(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * b.latencyScale)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (b *Backend) FetchHistory(ctx context.Context, userID string) ([]domain.DisposalTransaction, error) {
	if err := b.sleep(ctx, historyLatency); err != nil {
		return nil, err
	}
	return historyFixture(userID), nil
}

func (b *Backend) SubmitWaste(ctx context.Context, userID string, category domain.WasteCategory, weightKg float64) (*domain.DisposalTransaction, error) {
	if err := b.sleep(ctx, submitLatency); err != nil {
		return nil, err
	}
	return &domain.DisposalTransaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Category:     category,
		WeightKg:     weightKg,
		PointsEarned: int(weightKg * pointsPerKg),
		Date:         time.Now().UTC(),
		Status:       domain.TransactionPending,
	}, nil
}

func (b *Backend) ClassifyImage(ctx context.Context, _ string) (*domain.Classification, error) {
	if err := b.sleep(ctx, classifyLatency); err != nil {
		return nil, err
	}

	b.mu.Lock()
	category := domain.ClassifiableCategories[b.rng.Intn(len(domain.ClassifiableCategories))]
	confidence := classifyMinConfidence + b.rng.Float64()*(classifyMaxConfidence-classifyMinConfidence)
	b.mu.Unlock()

	return &domain.Classification{
		Category:   category,
		Confidence: confidence,
		BinColor:   category.BinColor(),
		Tip:        category.RecycleTip(),
		Points:     classifyRewardPoints,
	}, nil
}

func (b *Backend) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if err := b.sleep(ctx, boardLatency); err != nil {
		return nil, err
	}
	return leaderboardFixture(), nil
}

func (b *Backend) Rewards(ctx context.Context) ([]domain.Reward, error) {
	if err := b.sleep(ctx, rewardsLatency); err != nil {
		return nil, err
	}
	return rewardsFixture(), nil
}

func (b *Backend) CollectionSchedule(ctx context.Context, area string) ([]domain.PickupSlot, error) {
	if err := b.sleep(ctx, historyLatency); err != nil {
		return nil, err
	}
	return scheduleFixture(area), nil
}

func (b *Backend) CommunityEvents(ctx context.Context) ([]domain.CommunityEvent, error) {
	if err := b.sleep(ctx, boardLatency); err != nil {
		return nil, err
	}
	return eventsFixture(), nil
}

func (b *Backend) CityStats(ctx context.Context, city string) (*domain.CityStats, error) {
	if err := b.sleep(ctx, statsLatency); err != nil {
		return nil, err
	}
	return cityStatsFixture(city), nil
}

// avatar renders the dicebear reference used throughout the fixtures.
func avatar(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", seed)
}
