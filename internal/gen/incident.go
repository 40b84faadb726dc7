package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// IncidentGenerator produces synthetic emergency incidents.
type IncidentGenerator struct {
	src       *Source
	now       time.Time
	generated []*models.Incident
}

// NewIncidentGenerator creates an incident generator. Timestamps are
// drawn between the start of day and the given anchor time.
func NewIncidentGenerator(src *Source, now time.Time) *IncidentGenerator {
	return &IncidentGenerator{src: src, now: now}
}

// Generate produces one valid incident and appends it to the generator's
// collection. An incident that fails validation is regenerated once;
// a second failure is surfaced as a ValidationError.
func (g *IncidentGenerator) Generate() (*models.Incident, error) {
	incident := g.draw()
	if err := incident.Validate(); err != nil {
		incident = g.draw()
		if err := incident.Validate(); err != nil {
			return nil, &ValidationError{Kind: "incident", Err: err}
		}
	}

	g.generated = append(g.generated, incident)
	return incident, nil
}

// Batch generates count incidents in order.
func (g *IncidentGenerator) Batch(count int) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0, count)
	for i := 0; i < count; i++ {
		incident, err := g.Generate()
		if err != nil {
			return incidents, err
		}
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

func (g *IncidentGenerator) draw() *models.Incident {
	src := g.src

	emergencyType := pick(src.rng, models.AllEmergencyTypes())

	// Callers from 1 to 95 so pediatric branches are reachable.
	sex := src.sex()
	caller := models.Caller{
		Name:           src.fullName(sex),
		Age:            src.intBetween(1, 95),
		Sex:            sex,
		Phone:          src.phone(),
		MedicalHistory: pick(src.rng, MedicalConditions),
	}

	createdAt := src.timeBetween(util.StartOfDay(g.now), g.now)
	vitals := DeriveVitals(src, emergencyType, caller.Age)

	return &models.Incident{
		ID:            src.NewID(util.PrefixIncident),
		CreatedAt:     createdAt,
		Caller:        caller,
		Location:      src.location(),
		EmergencyType: emergencyType,
		Priority:      ScorePriority(emergencyType, caller, createdAt),
		OperatorNotes: operatorNote(caller, emergencyType),
		Symptoms:      SymptomsFor(emergencyType),
		Vitals:        vitals,
		Condition:     DeriveCondition(src, emergencyType, vitals),
		Status:        models.IncidentDispatched,
	}
}

func operatorNote(caller models.Caller, emergencyType models.EmergencyType) string {
	return fmt.Sprintf("Caller %s reports %s. Patient assessment pending.",
		caller.Name, strings.ToLower(string(emergencyType)))
}

// Generated returns all incidents produced so far, in generation order.
func (g *IncidentGenerator) Generated() []*models.Incident {
	return g.generated
}

// IncidentStats aggregates the generated incidents.
type IncidentStats struct {
	Total           int
	ByPriority      map[int]int
	ByType          map[models.EmergencyType]int
	AveragePriority float64
}

// Stats computes aggregate statistics over the generated incidents.
func (g *IncidentGenerator) Stats() IncidentStats {
	stats := IncidentStats{
		Total:      len(g.generated),
		ByPriority: make(map[int]int),
		ByType:     make(map[models.EmergencyType]int),
	}

	sum := 0
	for _, incident := range g.generated {
		stats.ByPriority[incident.Priority]++
		stats.ByType[incident.EmergencyType]++
		sum += incident.Priority
	}
	if stats.Total > 0 {
		stats.AveragePriority = float64(sum) / float64(stats.Total)
	}
	return stats
}
