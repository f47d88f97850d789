package mockbackend

import (
	"time"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

func historyFixture(userID string) []domain.DisposalTransaction {
	now := time.Now().UTC()
	return []domain.DisposalTransaction{
		{ID: "t1", UserID: userID, Category: domain.CategoryOrganic, WeightKg: 2.5, PointsEarned: 25, Date: now, Status: domain.TransactionVerified},
		{ID: "t2", UserID: userID, Category: domain.CategoryPlastic, WeightKg: 0.5, PointsEarned: 50, Date: now.Add(-24 * time.Hour), Status: domain.TransactionVerified},
	}
}

func leaderboardFixture() []domain.LeaderboardEntry {
	return []domain.LeaderboardEntry{
		{Rank: 1, Name: "Rohan Kumar", Points: 2850, AvatarRef: avatar("Rohan"), Trend: domain.TrendUp},
		{Rank: 2, Name: "Priya Sharma", Points: 2720, AvatarRef: avatar("Priya"), Trend: domain.TrendSame},
		{Rank: 3, Name: "Amit Verma", Points: 2650, AvatarRef: avatar("Amit"), Trend: domain.TrendUp},
		{Rank: 4, Name: "Neha Gupta", Points: 2400, AvatarRef: avatar("Neha"), Trend: domain.TrendDown},
		{Rank: 5, Name: "Vikram Singh", Points: 2150, AvatarRef: avatar("Vikram"), Trend: domain.TrendUp},
		{Rank: 6, Name: "You", Points: 1980, AvatarRef: avatar("Felix"), Trend: domain.TrendUp},
		{Rank: 7, Name: "Anjali D.", Points: 1850, AvatarRef: avatar("Anjali"), Trend: domain.TrendDown},
		{Rank: 8, Name: "Rahul K.", Points: 1600, AvatarRef: avatar("Rahul"), Trend: domain.TrendSame},
		{Rank: 9, Name: "Suresh P.", Points: 1450, AvatarRef: avatar("Suresh"), Trend: domain.TrendDown},
		{Rank: 10, Name: "Meera J.", Points: 1200, AvatarRef: avatar("Meera"), Trend: domain.TrendUp},
		{Rank: 11, Name: "Kabir", Points: 900, AvatarRef: avatar("Kabir"), Trend: domain.TrendSame},
		{Rank: 12, Name: "Tara", Points: 850, AvatarRef: avatar("Tara"), Trend: domain.TrendDown},
	}
}

func rewardsFixture() []domain.Reward {
	return []domain.Reward{
		{ID: 1, Title: "PVR Movie Ticket", Cost: 500, Kind: "entertainment", Description: "1 Free Ticket (Any Show)"},
		{ID: 2, Title: "Amazon Gift Card", Cost: 1000, Kind: "shopping", Description: "₹500 Voucher Balance"},
		{ID: 3, Title: "Starbucks Coffee", Cost: 350, Kind: "food", Description: "Tall Cappuccino (Hot/Cold)"},
		{ID: 4, Title: "Metro Pass (7 Days)", Cost: 800, Kind: "travel", Description: "Unlimited Travel Pass"},
		{ID: 5, Title: "Pro Badge (Profile)", Cost: 2000, Kind: "exclusive", Description: "Golden Profile Frame"},
		{ID: 6, Title: "Mystery Box", Cost: 1500, Kind: "mystery", Description: "Random Rare Item!"},
	}
}

func scheduleFixture(area string) []domain.PickupSlot {
	if area == "" {
		area = "MP Nagar"
	}
	return []domain.PickupSlot{
		{Day: "Monday", Window: "06:00-08:00", Area: area, Category: domain.CategoryOrganic},
		{Day: "Wednesday", Window: "06:00-08:00", Area: area, Category: domain.CategoryPlastic},
		{Day: "Friday", Window: "06:00-08:00", Area: area, Category: domain.CategoryPaper},
		{Day: "Saturday", Window: "10:00-12:00", Area: area, Category: domain.CategoryEWaste},
	}
}

func eventsFixture() []domain.CommunityEvent {
	base := time.Now().UTC().Truncate(24 * time.Hour)
	return []domain.CommunityEvent{
		{ID: "e1", Title: "Upper Lake Clean-Up Drive", Location: "Boat Club, Bhopal", StartsAt: base.AddDate(0, 0, 3).Add(7 * time.Hour), Points: 100},
		{ID: "e2", Title: "Composting Workshop", Location: "Shahpura Community Hall", StartsAt: base.AddDate(0, 0, 7).Add(10 * time.Hour), Points: 50},
		{ID: "e3", Title: "E-Waste Collection Camp", Location: "New Market Circle", StartsAt: base.AddDate(0, 0, 10).Add(9 * time.Hour), Points: 75},
	}
}

// cityStatsFixture simulates per-city variation: Bhopal is the reference,
// every other covered city reports at 80% of its volume.
func cityStatsFixture(city string) *domain.CityStats {
	multiplier := 1.0
	if city != "Bhopal" {
		multiplier = 0.8
	}

	return &domain.CityStats{
		City: city,
		KPIs: domain.CityKPIs{
			SegregationRate: 78 * multiplier,
			Participation:   64 * multiplier,
			TotalWasteKg:    12500 * multiplier,
			FuelSavedL:      450 * multiplier,
		},
		Trends: []domain.DailyTrend{
			{Day: "Mon", WetKg: 4000, DryKg: 2400},
			{Day: "Tue", WetKg: 3000, DryKg: 1398},
			{Day: "Wed", WetKg: 2000, DryKg: 9800},
			{Day: "Thu", WetKg: 2780, DryKg: 3908},
			{Day: "Fri", WetKg: 1890, DryKg: 4800},
			{Day: "Sat", WetKg: 2390, DryKg: 3800},
			{Day: "Sun", WetKg: 3490, DryKg: 4300},
		},
		Composition: []domain.CompositionSlice{
			{Name: "Organic", Percent: 45},
			{Name: "Plastic", Percent: 25},
			{Name: "Paper", Percent: 15},
			{Name: "Others", Percent: 15},
		},
	}
}
