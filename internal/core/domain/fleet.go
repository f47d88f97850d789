package domain

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BinStatus is the operational state of a collection bin.
type BinStatus string

const (
	BinActive BinStatus = "active"
	BinIssue  BinStatus = "issue"
)

// Bin is a public collection bin tracked on the staff map.
type Bin struct {
	ID         string      `json:"id"`
	Location   Coordinates `json:"location"`
	FillLevel  int         `json:"fill_level"` // 0-100
	Status     BinStatus   `json:"status"`
	LastPickup string      `json:"last_pickup"`
}

// RouteStop is one stop on a staff collection route.
type RouteStop struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	BinID     string `json:"bin_id"`
	Completed bool   `json:"completed"`
}

// FleetStats summarises today's collection activity for the staff dashboard.
type FleetStats struct {
	CollectedKg float64 `json:"collected_kg"`
	FuelUsedL   float64 `json:"fuel_used_l"`
	SLAPercent  float64 `json:"sla_percent"`
}

// BinReport is a fill-level observation for a bin, produced by a citizen
// scan or a staff update and applied to the fleet state asynchronously.
type BinReport struct {
	BinID      string `json:"bin_id"`
	FillLevel  int    `json:"fill_level"` // 0-100
	ReportedBy string `json:"reported_by"`
	Source     string `json:"source"` // "citizen_scan" or "staff_app"
}
