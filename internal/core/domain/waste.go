package domain

import "time"

// WasteCategory is the closed set of categories the classifier and the
// disposal flow understand.
type WasteCategory string

const (
	CategoryOrganic   WasteCategory = "organic"
	CategoryPlastic   WasteCategory = "plastic"
	CategoryPaper     WasteCategory = "paper"
	CategoryMetal     WasteCategory = "metal"
	CategoryGlass     WasteCategory = "glass"
	CategoryEWaste    WasteCategory = "e_waste"
	CategoryHazardous WasteCategory = "hazardous"
)

// ClassifiableCategories are the categories the image classifier may return.
// Hazardous is excluded: hazardous waste is reported, never auto-classified.
var ClassifiableCategories = []WasteCategory{
	CategoryOrganic,
	CategoryPlastic,
	CategoryPaper,
	CategoryMetal,
	CategoryGlass,
	CategoryEWaste,
}

// Valid reports whether c is one of the known categories.
func (c WasteCategory) Valid() bool {
	switch c {
	case CategoryOrganic, CategoryPlastic, CategoryPaper, CategoryMetal,
		CategoryGlass, CategoryEWaste, CategoryHazardous:
		return true
	}
	return false
}

// BinColor returns the municipal bin colour a category belongs in.
func (c WasteCategory) BinColor() string {
	switch c {
	case CategoryOrganic:
		return "green"
	case CategoryPlastic:
		return "yellow"
	case CategoryPaper:
		return "blue"
	case CategoryMetal:
		return "grey"
	case CategoryGlass:
		return "amber"
	case CategoryEWaste:
		return "red"
	default:
		return "black"
	}
}

// RecycleTip returns the disposal tip shown alongside a classification.
func (c WasteCategory) RecycleTip() string {
	switch c {
	case CategoryOrganic:
		return "Great for composting! Keep it dry."
	case CategoryPlastic:
		return "Rinse it before throwing. Crush to save space."
	case CategoryEWaste:
		return "Dangerous! Do not mix with regular trash."
	case CategoryPaper:
		return "Keep it dry and clean. No grease!"
	default:
		return "Thanks for keeping the city clean!"
	}
}

// TransactionStatus is the verification state of a disposal transaction.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionVerified TransactionStatus = "verified"
)

// DisposalTransaction records one waste submission and the points it earned.
type DisposalTransaction struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Category     WasteCategory     `json:"category"`
	WeightKg     float64           `json:"weight_kg"`
	PointsEarned int               `json:"points_earned"`
	Date         time.Time         `json:"date"`
	Status       TransactionStatus `json:"status"`
}

// Classification is the outcome of an image classification request.
type Classification struct {
	Category   WasteCategory `json:"category"`
	Confidence float64       `json:"confidence"`
	BinColor   string        `json:"bin_color"`
	Tip        string        `json:"tip"`
	Points     int           `json:"points"`
}
