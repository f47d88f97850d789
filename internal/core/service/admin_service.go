package service

import (
	"context"
	"fmt"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// Cities covered by the programme.
var cities = []string{"Bhopal", "Indore", "Jabalpur", "Gwalior"}

// AdminService serves the city-wide analytics surface and the bin QR
// payload generator.
type AdminService struct {
	backend ports.Backend
}

func NewAdminService(backend ports.Backend) *AdminService {
	return &AdminService{backend: backend}
}

// CityStats returns the analytics payload for one covered city.
func (s *AdminService) CityStats(ctx context.Context, city string) (*domain.CityStats, error) {
	if !coveredCity(city) {
		return nil, domain.ErrUnknownCity
	}
	return s.backend.CityStats(ctx, city)
}

// Cities returns the covered city list.
func (s *AdminService) Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// BinCode renders the payload printed into a bin's QR label. The citizen
// scanner expects exactly this format.
func (s *AdminService) BinCode(binID, location string) string {
	if location == "" {
		return fmt.Sprintf("KS:BIN:%s", binID)
	}
	return fmt.Sprintf("KS:BIN:%s:%s", binID, location)
}

func coveredCity(city string) bool {
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}
