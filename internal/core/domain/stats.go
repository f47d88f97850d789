package domain

// CityKPIs are the headline indicators on the admin dashboard.
type CityKPIs struct {
	SegregationRate float64 `json:"segregation_rate"` // percent
	Participation   float64 `json:"participation"`    // percent
	TotalWasteKg    float64 `json:"total_waste_kg"`
	FuelSavedL      float64 `json:"fuel_saved_l"`
}

// DailyTrend is one day of wet/dry collection volume.
type DailyTrend struct {
	Day   string  `json:"day"`
	WetKg float64 `json:"wet_kg"`
	DryKg float64 `json:"dry_kg"`
}

// CompositionSlice is one segment of the waste composition breakdown.
type CompositionSlice struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// CityStats is the full analytics payload for one city.
type CityStats struct {
	City        string             `json:"city"`
	KPIs        CityKPIs           `json:"kpis"`
	Trends      []DailyTrend       `json:"trends"`
	Composition []CompositionSlice `json:"composition"`
}
