package gen

import (
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// HospitalGenerator produces the fixed set of receiving hospitals and
// applies admission updates to them.
type HospitalGenerator struct {
	src       *Source
	now       time.Time
	generated []*models.Hospital
}

// NewHospitalGenerator creates a hospital generator.
func NewHospitalGenerator(src *Source, now time.Time) *HospitalGenerator {
	return &HospitalGenerator{src: src, now: now}
}

// Generate produces one valid hospital from a catalog site. Single
// regeneration retry on validation failure, then ValidationError.
func (g *HospitalGenerator) Generate(site HospitalSite) (*models.Hospital, error) {
	hospital := g.draw(site)
	if err := hospital.Validate(); err != nil {
		hospital = g.draw(site)
		if err := hospital.Validate(); err != nil {
			return nil, &ValidationError{Kind: "hospital", Err: err}
		}
	}

	g.generated = append(g.generated, hospital)
	return hospital, nil
}

// Batch generates count hospitals walking the site catalog in order, so
// the level-one trauma center is always present first. Counts beyond
// the catalog wrap around with fresh identities.
func (g *HospitalGenerator) Batch(count int) ([]*models.Hospital, error) {
	hospitals := make([]*models.Hospital, 0, count)
	for i := 0; i < count; i++ {
		site := HospitalSites[i%len(HospitalSites)]
		hospital, err := g.Generate(site)
		if err != nil {
			return hospitals, err
		}
		hospitals = append(hospitals, hospital)
	}
	return hospitals, nil
}

func (g *HospitalGenerator) draw(site HospitalSite) *models.Hospital {
	src := g.src
	spec := models.HospitalTypeSpecs[site.Type]

	total := src.intBetween(spec.MinCapacity, spec.MaxCapacity)
	// Hospitals start busy: 60-100% of beds occupied.
	current := src.intBetween(total*60/100, total)

	specialties := append([]string{}, spec.Specialties...)
	if src.rng.Intn(100) < 30 {
		extra := pick(src.rng, ExtraSpecialties)
		if !contains(specialties, extra) {
			specialties = append(specialties, extra)
		}
	}

	return &models.Hospital{
		ID:              src.NewID(util.PrefixHospital),
		Name:            site.Name,
		Type:            site.Type,
		Address:         site.Address,
		Coordinates:     site.Coordinates,
		Phone:           src.phone(),
		Specialties:     specialties,
		TotalCapacity:   total,
		CurrentCapacity: current,
		EDStatus:        models.EDStatusForBeds(total - current),
		AverageWaitTime: int(float64(src.intBetween(15, 120)) * spec.WaitTimeFactor),
		HelicopterPad:   spec.HelicopterPad,
		BurnUnit:        spec.BurnUnit,
		StrokeCenter:    spec.StrokeCenter,
		CreatedAt:       g.now,
	}
}

// UpdateStatus applies an admission/discharge delta to a hospital and
// recomputes its derived fields. The patient count is clamped to
// [0, total capacity] rather than rejected, so a burst of admissions
// against a nearly full hospital fills it and flips the emergency
// department to Critical instead of erroring.
func (g *HospitalGenerator) UpdateStatus(hospital *models.Hospital, admitted, discharged int) {
	current := hospital.CurrentCapacity + admitted - discharged
	if current < 0 {
		current = 0
	}
	if current > hospital.TotalCapacity {
		current = hospital.TotalCapacity
	}
	hospital.CurrentCapacity = current
	hospital.EDStatus = models.EDStatusForBeds(hospital.AvailableBeds())
	hospital.AverageWaitTime = int(float64(g.src.intBetween(15, 120)) * waitMultiplier(hospital))
}

// waitMultiplier scales the base wait by occupancy pressure.
func waitMultiplier(h *models.Hospital) float64 {
	ratio := float64(h.CurrentCapacity) / float64(h.TotalCapacity)
	switch {
	case ratio > 0.9:
		return 2.0
	case ratio > 0.8:
		return 1.5
	case ratio > 0.7:
		return 1.2
	default:
		return 1.0
	}
}

// Generated returns all hospitals produced so far, in generation order.
func (g *HospitalGenerator) Generated() []*models.Hospital {
	return g.generated
}

// ByType returns the generated hospitals of the given type.
func (g *HospitalGenerator) ByType(t models.HospitalType) []*models.Hospital {
	var out []*models.Hospital
	for _, h := range g.generated {
		if h.Type == t {
			out = append(out, h)
		}
	}
	return out
}

// Accepting returns the hospitals currently accepting transports.
func (g *HospitalGenerator) Accepting() []*models.Hospital {
	var out []*models.Hospital
	for _, h := range g.generated {
		if h.Accepting() {
			out = append(out, h)
		}
	}
	return out
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

// HospitalStats aggregates the generated hospitals.
type HospitalStats struct {
	Total         int
	TotalCapacity int
	TotalPatients int
	AvailableBeds int
	ByType        map[models.HospitalType]int
	ByEDStatus    map[models.EDStatus]int
}

// Stats computes aggregate statistics over the generated hospitals.
func (g *HospitalGenerator) Stats() HospitalStats {
	stats := HospitalStats{
		Total:      len(g.generated),
		ByType:     make(map[models.HospitalType]int),
		ByEDStatus: make(map[models.EDStatus]int),
	}

	for _, h := range g.generated {
		stats.TotalCapacity += h.TotalCapacity
		stats.TotalPatients += h.CurrentCapacity
		stats.AvailableBeds += h.AvailableBeds()
		stats.ByType[h.Type]++
		stats.ByEDStatus[h.EDStatus]++
	}
	return stats
}
