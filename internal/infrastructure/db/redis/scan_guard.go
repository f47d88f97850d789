package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScanGuard enforces the one-scan-per-bin-per-day rule, backed by Redis.
// Days are UTC calendar days and keys expire at the next UTC midnight, so
// every client sees the same scan window regardless of its local clock.
// Key format: scan:<user_id>:<bin_id>:<yyyy-mm-dd>
type ScanGuard struct {
	client *redis.Client
	now    func() time.Time
}

// NewScanGuard creates a ScanGuard wrapping the given Redis client.
func NewScanGuard(client *redis.Client) *ScanGuard {
	return &ScanGuard{client: client, now: time.Now}
}

// AlreadyScanned reports whether the user has already scanned this bin
// during the current UTC day.
func (g *ScanGuard) AlreadyScanned(ctx context.Context, userID, binID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(userID, binID)).Result()
	if err != nil {
		return false, fmt.Errorf("scan guard check: %w", err)
	}
	return n > 0, nil
}

// MarkScanned records the scan; the mark expires at the next UTC midnight.
func (g *ScanGuard) MarkScanned(ctx context.Context, userID, binID string) error {
	return g.client.Set(ctx, g.key(userID, binID), "1", g.untilMidnight()).Err()
}

func (g *ScanGuard) key(userID, binID string) string {
	return fmt.Sprintf("scan:%s:%s:%s", userID, binID, g.now().UTC().Format("2006-01-02"))
}

func (g *ScanGuard) untilMidnight() time.Duration {
	now := g.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
