package service

import (
	"math/rand"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

// overflowLevel is the fill level at which a bin is flagged as an issue.
const overflowLevel = 95

// vehicleJitter is the maximum per-axis movement (degrees) of one simulated
// vehicle step.
const vehicleJitter = 0.0005

// Bhopal city centre, the seed position for the demo fleet.
const (
	baseLat = 23.2599
	baseLng = 77.4126
)

// FleetService holds the live fleet state for the staff dashboard: bin fill
// levels, the collection route, and the vehicle position. State is
// in-memory and mutex-guarded; fill-level reports arrive asynchronously
// through ApplyReport.
type FleetService struct {
	mu      sync.RWMutex
	bins    []domain.Bin
	route   []domain.RouteStop
	vehicle domain.Coordinates
	stats   domain.FleetStats
	log     zerolog.Logger
}

func NewFleetService(log zerolog.Logger) *FleetService {
	return &FleetService{
		bins:    seedBins(),
		route:   seedRoute(),
		vehicle: domain.Coordinates{Lat: baseLat, Lng: baseLng},
		stats:   domain.FleetStats{CollectedKg: 1240, FuelUsedL: 8.5, SLAPercent: 98},
		log:     log,
	}
}

// Bins returns a snapshot of all tracked bins.
func (s *FleetService) Bins() []domain.Bin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Bin, len(s.bins))
	copy(out, s.bins)
	return out
}

// Route returns a snapshot of today's collection route.
func (s *FleetService) Route() []domain.RouteStop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RouteStop, len(s.route))
	copy(out, s.route)
	return out
}

// Stats returns the collection summary for the staff dashboard.
func (s *FleetService) Stats() domain.FleetStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Vehicle returns the current vehicle position.
func (s *FleetService) Vehicle() domain.Coordinates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicle
}

// ToggleStop flips the completion flag of one route stop.
func (s *FleetService) ToggleStop(id string) (domain.RouteStop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.route {
		if s.route[i].ID == id {
			s.route[i].Completed = !s.route[i].Completed
			return s.route[i], nil
		}
	}
	return domain.RouteStop{}, domain.ErrStopNotFound
}

// ApplyReport updates a bin's fill level from a citizen scan or staff
// update. Levels are clamped to [0,100]; a bin at or above overflowLevel is
// flagged as an issue.
func (s *FleetService) ApplyReport(report domain.BinReport) error {
	level := report.FillLevel
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bins {
		if s.bins[i].ID != report.BinID {
			continue
		}
		s.bins[i].FillLevel = level
		if level >= overflowLevel {
			s.bins[i].Status = domain.BinIssue
		}
		s.log.Debug().Str("bin", report.BinID).Int("level", level).Str("source", report.Source).Msg("bin level updated")
		return nil
	}
	return domain.ErrBinNotFound
}

// MoveVehicle advances the simulated vehicle by a small random step and
// returns the new position.
func (s *FleetService) MoveVehicle() domain.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicle.Lat += (rand.Float64() - 0.5) * vehicleJitter
	s.vehicle.Lng += (rand.Float64() - 0.5) * vehicleJitter
	return s.vehicle
}

func seedBins() []domain.Bin {
	return []domain.Bin{
		{ID: "B101", Location: domain.Coordinates{Lat: baseLat + 0.002, Lng: baseLng + 0.001}, FillLevel: 85, Status: domain.BinActive, LastPickup: "Yesterday"},
		{ID: "B102", Location: domain.Coordinates{Lat: baseLat - 0.003, Lng: baseLng - 0.002}, FillLevel: 45, Status: domain.BinActive, LastPickup: "Today"},
		{ID: "B103", Location: domain.Coordinates{Lat: baseLat + 0.004, Lng: baseLng - 0.004}, FillLevel: 10, Status: domain.BinActive, LastPickup: "Today"},
		{ID: "B104", Location: domain.Coordinates{Lat: baseLat - 0.001, Lng: baseLng + 0.005}, FillLevel: 95, Status: domain.BinIssue, LastPickup: "2 days ago"},
	}
}

func seedRoute() []domain.RouteStop {
	return []domain.RouteStop{
		{ID: "S1", Address: "12 MP Nagar Zone 1", BinID: "B101"},
		{ID: "S2", Address: "Near DB Mall", BinID: "B104"},
		{ID: "S3", Address: "New Market Circle", BinID: "B102"},
	}
}
