package ports

import (
	"context"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// ScanInput carries one decoded bin QR payload plus the reported fill level.
type ScanInput struct {
	UserID    string
	Code      string // raw payload, expected format KS:BIN:<id>[:<location>]
	FillLevel int    // 0-100
}

// ScanResult is the outcome of a successful bin scan.
type ScanResult struct {
	BinID         string
	Location      string
	PointsAwarded int
	NewBalance    int
}

// RedeemResult is the outcome of a successful reward redemption.
type RedeemResult struct {
	Reward     domain.Reward
	NewBalance int
}

// CitizenService covers everything the citizen dashboard needs.
type CitizenService interface {
	History(ctx context.Context, userID string) ([]domain.DisposalTransaction, error)
	SubmitWaste(ctx context.Context, userID string, category domain.WasteCategory, weightKg float64) (*domain.DisposalTransaction, error)
	Classify(ctx context.Context, imageRef string) (*domain.Classification, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Rewards(ctx context.Context) ([]domain.Reward, error)
	Redeem(ctx context.Context, rewardID int) (*RedeemResult, error)
	ScanBin(ctx context.Context, in ScanInput) (*ScanResult, error)
	Schedule(ctx context.Context, area string) ([]domain.PickupSlot, error)
	Events(ctx context.Context) ([]domain.CommunityEvent, error)
}

// FleetService exposes the staff route, bin map, and vehicle state.
type FleetService interface {
	Bins() []domain.Bin
	Route() []domain.RouteStop
	Stats() domain.FleetStats
	Vehicle() domain.Coordinates
	ToggleStop(id string) (domain.RouteStop, error)
	ApplyReport(report domain.BinReport) error
	MoveVehicle() domain.Coordinates
}

// AdminService covers the city-wide analytics surface.
type AdminService interface {
	CityStats(ctx context.Context, city string) (*domain.CityStats, error)
	Cities() []string
	BinCode(binID, location string) string
}
