package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// stubBackend answers instantly with canned data.
type stubBackend struct {
	rewards        []domain.Reward
	classification *domain.Classification
}

func (b *stubBackend) FetchHistory(_ context.Context, _ string) ([]domain.DisposalTransaction, error) {
	return nil, nil
}

func (b *stubBackend) SubmitWaste(_ context.Context, userID string, category domain.WasteCategory, weightKg float64) (*domain.DisposalTransaction, error) {
	return &domain.DisposalTransaction{
		ID:           "t1",
		UserID:       userID,
		Category:     category,
		WeightKg:     weightKg,
		PointsEarned: int(weightKg * 10),
		Status:       domain.TransactionPending,
	}, nil
}

func (b *stubBackend) ClassifyImage(_ context.Context, _ string) (*domain.Classification, error) {
	return b.classification, nil
}

func (b *stubBackend) Leaderboard(_ context.Context) ([]domain.LeaderboardEntry, error) {
	return nil, nil
}

func (b *stubBackend) Rewards(_ context.Context) ([]domain.Reward, error) {
	return b.rewards, nil
}

func (b *stubBackend) CollectionSchedule(_ context.Context, _ string) ([]domain.PickupSlot, error) {
	return nil, nil
}

func (b *stubBackend) CommunityEvents(_ context.Context) ([]domain.CommunityEvent, error) {
	return nil, nil
}

func (b *stubBackend) CityStats(_ context.Context, city string) (*domain.CityStats, error) {
	return &domain.CityStats{City: city}, nil
}

// fakeBalance implements BalanceKeeper with the store's reject semantics.
type fakeBalance struct {
	balance int
	active  bool
}

func (f *fakeBalance) Current() (domain.Session, bool) {
	return domain.Session{ID: "u1", PointBalance: f.balance}, f.active
}

func (f *fakeBalance) AdjustBalance(_ context.Context, delta int) (int, error) {
	if !f.active {
		return 0, nil
	}
	if f.balance+delta < 0 {
		return f.balance, domain.ErrInsufficientPoints
	}
	f.balance += delta
	return f.balance, nil
}

type fakeScanGuard struct {
	seen map[string]bool
}

func newFakeScanGuard() *fakeScanGuard {
	return &fakeScanGuard{seen: make(map[string]bool)}
}

func (g *fakeScanGuard) AlreadyScanned(_ context.Context, userID, binID string) (bool, error) {
	return g.seen[userID+"/"+binID], nil
}

func (g *fakeScanGuard) MarkScanned(_ context.Context, userID, binID string) error {
	g.seen[userID+"/"+binID] = true
	return nil
}

type captureSink struct {
	reports []domain.BinReport
}

func (c *captureSink) Enqueue(report domain.BinReport) {
	c.reports = append(c.reports, report)
}

func newCitizenService(balance *fakeBalance, backend *stubBackend) (*CitizenService, *fakeScanGuard, *captureSink) {
	guard := newFakeScanGuard()
	sink := &captureSink{}
	svc := NewCitizenService(backend, balance, guard, sink, zerolog.Nop())
	return svc, guard, sink
}

func TestCitizenService_Redeem(t *testing.T) {
	balance := &fakeBalance{balance: 600, active: true}
	svc, _, _ := newCitizenService(balance, &stubBackend{rewards: []domain.Reward{
		{ID: 1, Title: "PVR Movie Ticket", Cost: 500},
		{ID: 2, Title: "Amazon Gift Card", Cost: 1000},
	}})

	result, err := svc.Redeem(context.Background(), 1)
	if err != nil {
		t.Fatalf("redeem failed: %v", err)
	}
	if result.NewBalance != 100 {
		t.Fatalf("expected balance 100, got %d", result.NewBalance)
	}

	// Second reward now costs more than the balance: hard reject.
	if _, err := svc.Redeem(context.Background(), 2); !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if balance.balance != 100 {
		t.Fatalf("rejected redemption changed the balance: %d", balance.balance)
	}
}

func TestCitizenService_Redeem_UnknownReward(t *testing.T) {
	svc, _, _ := newCitizenService(&fakeBalance{balance: 100, active: true}, &stubBackend{})

	if _, err := svc.Redeem(context.Background(), 42); !errors.Is(err, domain.ErrUnknownReward) {
		t.Fatalf("expected ErrUnknownReward, got %v", err)
	}
}

func TestCitizenService_ScanBin(t *testing.T) {
	balance := &fakeBalance{balance: 120, active: true}
	svc, _, sink := newCitizenService(balance, &stubBackend{})

	result, err := svc.ScanBin(context.Background(), ports.ScanInput{
		UserID:    "u1",
		Code:      "KS:BIN:B101:MP Nagar",
		FillLevel: 70,
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if result.BinID != "B101" || result.Location != "MP Nagar" {
		t.Fatalf("unexpected parse: %+v", result)
	}
	if result.PointsAwarded != 20 || result.NewBalance != 140 {
		t.Fatalf("expected +20 to 140, got %+v", result)
	}

	if len(sink.reports) != 1 {
		t.Fatalf("expected one fleet report, got %d", len(sink.reports))
	}
	if sink.reports[0].BinID != "B101" || sink.reports[0].FillLevel != 70 || sink.reports[0].Source != "citizen_scan" {
		t.Fatalf("unexpected report: %+v", sink.reports[0])
	}
}

func TestCitizenService_ScanBin_DailyLimit(t *testing.T) {
	svc, _, _ := newCitizenService(&fakeBalance{balance: 0, active: true}, &stubBackend{})

	if _, err := svc.ScanBin(context.Background(), ports.ScanInput{UserID: "u1", Code: "KS:BIN:B101", FillLevel: 50}); err != nil {
		t.Fatalf("first scan failed: %v", err)
	}
	if _, err := svc.ScanBin(context.Background(), ports.ScanInput{UserID: "u1", Code: "KS:BIN:B101", FillLevel: 60}); !errors.Is(err, domain.ErrBinAlreadyScanned) {
		t.Fatalf("expected ErrBinAlreadyScanned, got %v", err)
	}

	// A different bin on the same day is still allowed.
	if _, err := svc.ScanBin(context.Background(), ports.ScanInput{UserID: "u1", Code: "KS:BIN:B102", FillLevel: 30}); err != nil {
		t.Fatalf("scan of second bin failed: %v", err)
	}
}

func TestCitizenService_ScanBin_RejectsForeignCodes(t *testing.T) {
	svc, _, sink := newCitizenService(&fakeBalance{balance: 0, active: true}, &stubBackend{})

	for _, code := range []string{"https://evil.example", "KS:BIN:", "BIN:B101", ""} {
		if _, err := svc.ScanBin(context.Background(), ports.ScanInput{UserID: "u1", Code: code}); !errors.Is(err, domain.ErrInvalidBinCode) {
			t.Fatalf("code %q: expected ErrInvalidBinCode, got %v", code, err)
		}
	}
	if len(sink.reports) != 0 {
		t.Fatalf("invalid codes must not reach the fleet")
	}
}

func TestCitizenService_Classify_CreditsPoints(t *testing.T) {
	balance := &fakeBalance{balance: 0, active: true}
	svc, _, _ := newCitizenService(balance, &stubBackend{classification: &domain.Classification{
		Category:   domain.CategoryPlastic,
		Confidence: 0.91,
		Points:     10,
	}})

	result, err := svc.Classify(context.Background(), "img-1")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Category != domain.CategoryPlastic {
		t.Fatalf("unexpected category: %s", result.Category)
	}
	if balance.balance != 10 {
		t.Fatalf("expected 10 points credited, got %d", balance.balance)
	}
}

func TestCitizenService_SubmitWaste_Validation(t *testing.T) {
	svc, _, _ := newCitizenService(&fakeBalance{active: true}, &stubBackend{})

	if _, err := svc.SubmitWaste(context.Background(), "u1", domain.WasteCategory("slime"), 1); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if _, err := svc.SubmitWaste(context.Background(), "u1", domain.CategoryOrganic, 0); err == nil {
		t.Fatalf("expected error for non-positive weight")
	}

	tx, err := svc.SubmitWaste(context.Background(), "u1", domain.CategoryOrganic, 2.5)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if tx.Status != domain.TransactionPending {
		t.Fatalf("submission must come back pending, got %s", tx.Status)
	}
}
