package domain

import "time"

// Trend indicates rank movement since the previous leaderboard period.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// LeaderboardEntry is one row of the city leaderboard.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	AvatarRef string `json:"avatar_ref,omitempty"`
	Trend     Trend  `json:"trend"`
}

// Reward is one item in the redemption catalog.
type Reward struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Cost        int    `json:"cost"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// PickupSlot is one entry of the published collection schedule.
type PickupSlot struct {
	Day      string        `json:"day"`
	Window   string        `json:"window"`
	Area     string        `json:"area"`
	Category WasteCategory `json:"category"`
}

// CommunityEvent is a civic engagement event (clean-up drive, workshop).
type CommunityEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at"`
	Points   int       `json:"points"`
}
