package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

const (
	scanRewardPoints = 20
	binCodePrefix    = "KS:BIN:"
)

// ScanGuard abstracts the daily anti-spam store (Redis). A (user, bin) pair
// may earn scan points at most once per UTC day.
type ScanGuard interface {
	AlreadyScanned(ctx context.Context, userID, binID string) (bool, error)
	MarkScanned(ctx context.Context, userID, binID string) error
}

// ReportSink receives fill-level reports for asynchronous application to
// the fleet state.
type ReportSink interface {
	Enqueue(report domain.BinReport)
}

// BalanceKeeper is the slice of the session store the citizen service
// needs: read the active session and mutate its point balance.
type BalanceKeeper interface {
	Current() (domain.Session, bool)
	AdjustBalance(ctx context.Context, delta int) (int, error)
}

// CitizenService implements the citizen dashboard operations on top of the
// remote backend boundary.
type CitizenService struct {
	backend ports.Backend
	balance BalanceKeeper
	guard   ScanGuard
	reports ReportSink
	log     zerolog.Logger
}

func NewCitizenService(backend ports.Backend, balance BalanceKeeper, guard ScanGuard, reports ReportSink, log zerolog.Logger) *CitizenService {
	return &CitizenService{
		backend: backend,
		balance: balance,
		guard:   guard,
		reports: reports,
		log:     log,
	}
}

// History returns the user's disposal transactions.
func (s *CitizenService) History(ctx context.Context, userID string) ([]domain.DisposalTransaction, error) {
	return s.backend.FetchHistory(ctx, userID)
}

// SubmitWaste records a manual waste submission. The transaction comes back
// pending; points are only credited once a collection verifies it.
func (s *CitizenService) SubmitWaste(ctx context.Context, userID string, category domain.WasteCategory, weightKg float64) (*domain.DisposalTransaction, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("submit waste: unknown category %q", category)
	}
	if weightKg <= 0 {
		return nil, fmt.Errorf("submit waste: weight must be positive")
	}
	return s.backend.SubmitWaste(ctx, userID, category, weightKg)
}

// Classify runs the image classifier and credits the flat classification
// reward to the active session.
func (s *CitizenService) Classify(ctx context.Context, imageRef string) (*domain.Classification, error) {
	result, err := s.backend.ClassifyImage(ctx, imageRef)
	if err != nil {
		return nil, err
	}

	if _, err := s.balance.AdjustBalance(ctx, result.Points); err != nil {
		s.log.Warn().Err(err).Msg("failed to credit classification points")
	}
	return result, nil
}

// Leaderboard returns the city leaderboard.
func (s *CitizenService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.backend.Leaderboard(ctx)
}

// Rewards returns the redemption catalog.
func (s *CitizenService) Rewards(ctx context.Context) ([]domain.Reward, error) {
	return s.backend.Rewards(ctx)
}

// Redeem debits a reward's cost from the active session. The debit is
// enforced by the session store: a cost above the balance is rejected with
// ErrInsufficientPoints, regardless of what the caller's UI allowed.
func (s *CitizenService) Redeem(ctx context.Context, rewardID int) (*ports.RedeemResult, error) {
	catalog, err := s.backend.Rewards(ctx)
	if err != nil {
		return nil, err
	}

	var reward *domain.Reward
	for i := range catalog {
		if catalog[i].ID == rewardID {
			reward = &catalog[i]
			break
		}
	}
	if reward == nil {
		return nil, domain.ErrUnknownReward
	}

	newBalance, err := s.balance.AdjustBalance(ctx, -reward.Cost)
	if err != nil {
		return nil, fmt.Errorf("redeem %q: %w", reward.Title, err)
	}

	s.log.Info().Int("reward_id", rewardID).Int("cost", reward.Cost).Int("balance", newBalance).Msg("reward redeemed")
	return &ports.RedeemResult{Reward: *reward, NewBalance: newBalance}, nil
}

// ScanBin processes a decoded bin QR payload: validates the code format,
// applies the daily anti-spam window, forwards the fill-level report to the
// fleet, and credits the scan reward.
func (s *CitizenService) ScanBin(ctx context.Context, in ports.ScanInput) (*ports.ScanResult, error) {
	binID, location, err := parseBinCode(in.Code)
	if err != nil {
		return nil, err
	}

	scanned, err := s.guard.AlreadyScanned(ctx, in.UserID, binID)
	if err != nil {
		s.log.Warn().Err(err).Str("bin", binID).Msg("scan guard check failed, allowing scan")
	} else if scanned {
		return nil, domain.ErrBinAlreadyScanned
	}

	if err := s.guard.MarkScanned(ctx, in.UserID, binID); err != nil {
		s.log.Warn().Err(err).Str("bin", binID).Msg("failed to mark scan")
	}

	s.reports.Enqueue(domain.BinReport{
		BinID:      binID,
		FillLevel:  in.FillLevel,
		ReportedBy: in.UserID,
		Source:     "citizen_scan",
	})

	newBalance, err := s.balance.AdjustBalance(ctx, scanRewardPoints)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("bin", binID).Int("fill_level", in.FillLevel).Msg("bin scan accepted")
	return &ports.ScanResult{
		BinID:         binID,
		Location:      location,
		PointsAwarded: scanRewardPoints,
		NewBalance:    newBalance,
	}, nil
}

// Schedule returns the pickup schedule for an area.
func (s *CitizenService) Schedule(ctx context.Context, area string) ([]domain.PickupSlot, error) {
	return s.backend.CollectionSchedule(ctx, area)
}

// Events returns upcoming community events.
func (s *CitizenService) Events(ctx context.Context) ([]domain.CommunityEvent, error) {
	return s.backend.CommunityEvents(ctx)
}

// parseBinCode splits a KS:BIN:<id>[:<location>] payload. Anything else is
// not one of our bins.
func parseBinCode(code string) (binID, location string, err error) {
	if !strings.HasPrefix(code, binCodePrefix) {
		return "", "", domain.ErrInvalidBinCode
	}
	rest := strings.TrimPrefix(code, binCodePrefix)
	parts := strings.SplitN(rest, ":", 2)
	if parts[0] == "" {
		return "", "", domain.ErrInvalidBinCode
	}
	binID = parts[0]
	if len(parts) == 2 {
		location = parts[1]
	}
	return binID, location, nil
}
