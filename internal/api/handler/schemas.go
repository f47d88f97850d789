package handler

import "github.com/kachra-seth/engagement-system/internal/core/domain"

type submitWasteRequest struct {
	Category string  `json:"category" validate:"required,wastecategory"`
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
}

type classifyRequest struct {
	ImageRef string `json:"image_ref" validate:"required"`
}

type scanRequest struct {
	Code      string `json:"code" validate:"required"`
	FillLevel int    `json:"fill_level" validate:"gte=0,lte=100"`
}

type scanResponse struct {
	BinID         string `json:"bin_id"`
	Location      string `json:"location,omitempty"`
	PointsAwarded int    `json:"points_awarded"`
	NewBalance    int    `json:"new_balance"`
}

type redeemResponse struct {
	Reward     domain.Reward `json:"reward"`
	NewBalance int           `json:"new_balance"`
}

type binReportRequest struct {
	FillLevel int `json:"fill_level" validate:"gte=0,lte=100"`
}

type qrResponse struct {
	BinID string `json:"bin_id"`
	Code  string `json:"code"`
}
