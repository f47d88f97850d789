package mockbackend

import (
	"context"
	"errors"
	"testing"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// instant returns a backend that answers without simulated latency.
func instant(seed int64) *Backend {
	return New(WithLatencyScale(0), WithSeed(seed))
}

func TestBackend_ClassifyImage_Distribution(t *testing.T) {
	b := instant(42)
	ctx := context.Background()

	valid := make(map[domain.WasteCategory]bool)
	for _, c := range domain.ClassifiableCategories {
		valid[c] = true
	}

	for i := 0; i < 200; i++ {
		result, err := b.ClassifyImage(ctx, "img")
		if err != nil {
			t.Fatalf("classify failed: %v", err)
		}
		if !valid[result.Category] {
			t.Fatalf("category %q outside the classifiable set", result.Category)
		}
		if result.Confidence < classifyMinConfidence || result.Confidence > classifyMaxConfidence {
			t.Fatalf("confidence %f outside [%f, %f]", result.Confidence, classifyMinConfidence, classifyMaxConfidence)
		}
		if result.Points != classifyRewardPoints {
			t.Fatalf("expected flat %d points, got %d", classifyRewardPoints, result.Points)
		}
		if result.BinColor != result.Category.BinColor() {
			t.Fatalf("bin colour does not match category")
		}
	}
}

func TestBackend_ClassifyImage_Reproducible(t *testing.T) {
	ctx := context.Background()
	a, b := instant(7), instant(7)

	for i := 0; i < 20; i++ {
		ra, _ := a.ClassifyImage(ctx, "img")
		rb, _ := b.ClassifyImage(ctx, "img")
		if ra.Category != rb.Category || ra.Confidence != rb.Confidence {
			t.Fatalf("same seed produced different classifications at step %d", i)
		}
	}
}

func TestBackend_SubmitWaste_Points(t *testing.T) {
	b := instant(1)

	tx, err := b.SubmitWaste(context.Background(), "u1", domain.CategoryOrganic, 2.5)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if tx.PointsEarned != 25 {
		t.Fatalf("expected 25 points for 2.5kg, got %d", tx.PointsEarned)
	}
	if tx.Status != domain.TransactionPending {
		t.Fatalf("expected pending status, got %s", tx.Status)
	}
	if tx.ID == "" {
		t.Fatalf("expected a transaction id")
	}
}

func TestBackend_HonoursCancellation(t *testing.T) {
	b := New(WithSeed(1)) // real latency so the timer is pending

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := b.Leaderboard(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := b.ClassifyImage(ctx, "img"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBackend_CityStats_Variation(t *testing.T) {
	b := instant(1)
	ctx := context.Background()

	bhopal, err := b.CityStats(ctx, "Bhopal")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	indore, err := b.CityStats(ctx, "Indore")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if bhopal.KPIs.SegregationRate <= indore.KPIs.SegregationRate {
		t.Fatalf("expected the reference city to lead: %f vs %f", bhopal.KPIs.SegregationRate, indore.KPIs.SegregationRate)
	}
	if len(bhopal.Trends) != 7 {
		t.Fatalf("expected a full week of trends, got %d", len(bhopal.Trends))
	}
}

func TestBackend_LeaderboardFixture(t *testing.T) {
	entries, err := instant(1).Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected entries")
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Fatalf("ranks must be contiguous from 1, got %d at index %d", e.Rank, i)
		}
		if i > 0 && entries[i-1].Points < e.Points {
			t.Fatalf("leaderboard must be sorted by points")
		}
	}
}
