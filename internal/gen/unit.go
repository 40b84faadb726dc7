package gen

import (
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// initialStatuses are the statuses a unit can be created in. Units never
// start on an incident; only Transition binds one.
var initialStatuses = []models.UnitStatus{
	models.UnitAvailable, models.UnitAvailable, models.UnitAvailable,
	models.UnitAvailable, models.UnitAvailable,
	models.UnitReturning, models.UnitAtHospital,
	models.UnitOutOfService, models.UnitMaintenance,
}

// UnitGenerator produces synthetic response units and runs their status
// state machine.
type UnitGenerator struct {
	src       *Source
	now       time.Time
	generated []*models.Unit
}

// NewUnitGenerator creates a unit generator.
func NewUnitGenerator(src *Source, now time.Time) *UnitGenerator {
	return &UnitGenerator{src: src, now: now}
}

// Generate produces one valid unit of the given type and appends it to
// the generator's collection. Single regeneration retry on validation
// failure, then ValidationError.
func (g *UnitGenerator) Generate(unitType models.UnitType) (*models.Unit, error) {
	unit := g.draw(unitType)
	if err := unit.Validate(); err != nil {
		unit = g.draw(unitType)
		if err := unit.Validate(); err != nil {
			return nil, &ValidationError{Kind: "unit", Err: err}
		}
	}

	g.generated = append(g.generated, unit)
	return unit, nil
}

// Batch generates count units cycling through the unit-type catalog so
// small fleets still get a mix of capabilities.
func (g *UnitGenerator) Batch(count int) ([]*models.Unit, error) {
	units := make([]*models.Unit, 0, count)
	for i := 0; i < count; i++ {
		unitType := models.UnitTypes[i%len(models.UnitTypes)]
		if i >= len(models.UnitTypes) {
			unitType = pick(g.src.rng, models.UnitTypes)
		}

		unit, err := g.Generate(unitType)
		if err != nil {
			return units, err
		}
		units = append(units, unit)
	}
	return units, nil
}

func (g *UnitGenerator) draw(unitType models.UnitType) *models.Unit {
	src := g.src

	status := pick(src.rng, initialStatuses)
	var lastIncident *time.Time
	if !status.Available() {
		t := g.now.Add(-time.Duration(src.intBetween(5, 120)) * time.Minute)
		lastIncident = &t
	}

	return &models.Unit{
		ID:               src.NewID(util.PrefixUnit),
		Number:           fmt.Sprintf("%s-%03d", unitType, src.intBetween(1, 999)),
		Type:             unitType,
		VehicleYear:      src.intBetween(2015, 2024),
		Mileage:          src.intBetween(50000, 150000),
		Station:          pick(src.rng, Stations),
		CurrentLocation:  src.coordinates(),
		Status:           status,
		AssignedCrew:     []string{},
		LastIncidentTime: lastIncident,
		CreatedAt:        g.now,
	}
}

// Transition moves a unit to a new status and keeps its assignment
// fields consistent:
//
//   - entering En Route, On Scene, or Transporting binds the incident
//     and optional destination; En Route also draws an ETA 3-15 minutes
//     out;
//   - entering Available clears incident, destination, and ETA and
//     stamps the last-incident time.
//
// Out of Service and Maintenance are terminal until manually reset and
// are never entered by relationship assignment.
func (g *UnitGenerator) Transition(unit *models.Unit, newStatus models.UnitStatus, incidentID, destination *string) error {
	if !newStatus.Valid() {
		return fmt.Errorf("invalid unit status: %s", newStatus)
	}

	unit.Status = newStatus

	switch {
	case newStatus.OnIncident():
		unit.CurrentIncidentID = incidentID
		if destination != nil {
			unit.Destination = destination
		}
		if newStatus == models.UnitEnRoute {
			eta := g.now.Add(time.Duration(g.src.intBetween(3, 15)) * time.Minute)
			unit.EstimatedArrival = &eta
		}
	case newStatus == models.UnitAvailable:
		unit.CurrentIncidentID = nil
		unit.Destination = nil
		unit.EstimatedArrival = nil
		now := g.now
		unit.LastIncidentTime = &now
	}

	return nil
}

// Generated returns all units produced so far, in generation order.
func (g *UnitGenerator) Generated() []*models.Unit {
	return g.generated
}

// Available returns the units currently able to take a dispatch.
func (g *UnitGenerator) Available() []*models.Unit {
	var out []*models.Unit
	for _, unit := range g.generated {
		if unit.IsAvailable() {
			out = append(out, unit)
		}
	}
	return out
}

// UnitStats aggregates the generated units.
type UnitStats struct {
	Total     int
	Available int
	ByType    map[models.UnitType]int
	ByStatus  map[models.UnitStatus]int
}

// Stats computes aggregate statistics over the generated units.
func (g *UnitGenerator) Stats() UnitStats {
	stats := UnitStats{
		Total:    len(g.generated),
		ByType:   make(map[models.UnitType]int),
		ByStatus: make(map[models.UnitStatus]int),
	}

	for _, unit := range g.generated {
		if unit.IsAvailable() {
			stats.Available++
		}
		stats.ByType[unit.Type]++
		stats.ByStatus[unit.Status]++
	}
	return stats
}
