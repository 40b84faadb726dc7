// Package sim coordinates the entity generators into a consistent
// simulated emergency-services world: incidents, crew, units, hospitals,
// and provider notes with cross-entity relationships.
package sim

import (
	"log/slog"
	"strings"
	"time"

	"github.com/emsim/emsim/internal/gen"
	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// Counts sets how many of each entity GenerateWorld produces. Zero
// values are valid and yield empty collections.
type Counts struct {
	Incidents        int
	Crew             int
	Units            int
	Hospitals        int
	NotesPerIncident int
}

// Assignment is the explicit record of one incident's dispatch links.
type Assignment struct {
	IncidentID string
	UnitID     *string
	CrewIDs    []string
	HospitalID *string
	AssignedAt time.Time
}

// World is the complete generated dataset.
type World struct {
	Incidents []*models.Incident
	Crew      []*models.CrewMember
	Units     []*models.Unit
	Hospitals []*models.Hospital
	Notes     []*models.ProviderNote
}

// Coordinator drives the generation pipeline and owns the resulting
// collections. A coordinator built from a seeded source produces the
// same world for the same seed and counts.
type Coordinator struct {
	log       *slog.Logger
	src       *gen.Source
	startedAt time.Time

	incidents *gen.IncidentGenerator
	crew      *gen.CrewGenerator
	units     *gen.UnitGenerator
	hospitals *gen.HospitalGenerator
	notes     *gen.NotesGenerator

	assignments map[string]*Assignment
}

// NewCoordinator creates a coordinator drawing from src. A nil logger
// falls back to slog.Default.
func NewCoordinator(logger *slog.Logger, src *gen.Source) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	return &Coordinator{
		log:         logger,
		src:         src,
		startedAt:   now,
		incidents:   gen.NewIncidentGenerator(src, now),
		crew:        gen.NewCrewGenerator(src, now),
		units:       gen.NewUnitGenerator(src, now),
		hospitals:   gen.NewHospitalGenerator(src, now),
		notes:       gen.NewNotesGenerator(src, now),
		assignments: make(map[string]*Assignment),
	}
}

// GenerateWorld runs the full pipeline: hospitals, crew, units with
// initial staffing, incidents, provider notes, then relationship
// assignment. On error the partial collections remain queryable through
// the coordinator's accessors.
func (c *Coordinator) GenerateWorld(counts Counts) (*World, error) {
	c.log.Info("generating world",
		"incidents", counts.Incidents, "crew", counts.Crew,
		"units", counts.Units, "hospitals", counts.Hospitals)

	if _, err := c.hospitals.Batch(counts.Hospitals); err != nil {
		return nil, err
	}
	if _, err := c.crew.Batch(counts.Crew); err != nil {
		return nil, err
	}
	units, err := c.units.Batch(counts.Units)
	if err != nil {
		return nil, err
	}
	for _, unit := range units {
		c.staffUnit(unit)
	}
	incidents, err := c.incidents.Batch(counts.Incidents)
	if err != nil {
		return nil, err
	}
	for _, incident := range incidents {
		if err := c.notesForIncident(incident, counts.NotesPerIncident); err != nil {
			return nil, err
		}
	}

	c.AssignRelationships()

	c.log.Info("world generated",
		"incidents", len(c.incidents.Generated()),
		"notes", len(c.notes.Generated()))
	return c.World(), nil
}

// World returns the current collections. Safe to call after a pipeline
// failure to inspect partial results.
func (c *Coordinator) World() *World {
	return &World{
		Incidents: c.incidents.Generated(),
		Crew:      c.crew.Generated(),
		Units:     c.units.Generated(),
		Hospitals: c.hospitals.Generated(),
		Notes:     c.notes.Generated(),
	}
}

// staffUnit fills a unit's roster from the assignable crew pool, up to
// the type's crew size. References are set on both sides.
func (c *Coordinator) staffUnit(unit *models.Unit) {
	for len(unit.AssignedCrew) < unit.Spec().CrewSize {
		member := c.pickAssignableCrew()
		if member == nil {
			return
		}
		member.AssignedUnitID = &unit.ID
		unit.AssignedCrew = append(unit.AssignedCrew, member.ID)
	}
}

func (c *Coordinator) pickAssignableCrew() *models.CrewMember {
	var pool []*models.CrewMember
	for _, member := range c.crew.Generated() {
		if member.IsAssignable() {
			pool = append(pool, member)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[c.src.Rand().Intn(len(pool))]
}

// notesForIncident generates the note sequence for one incident,
// attributed to a crew member already linked to it when one exists,
// otherwise to a random crew member, otherwise to a fresh crew ID.
// Transport notes name the hospital the specialty chain would pick for
// this incident.
func (c *Coordinator) notesForIncident(incident *models.Incident, count int) error {
	crewID := c.crewIDForIncident(incident.ID)
	ctx := gen.NoteContext{
		Emergency: incident.EmergencyType,
		Vitals:    &incident.Vitals,
	}
	if unit := c.unitForIncident(incident.ID); unit != nil {
		ctx.UnitNumber = unit.Number
	}
	if hospital := c.SelectHospital(incident); hospital != nil {
		ctx.HospitalName = hospital.Name
	}
	_, err := c.notes.ForIncident(incident.ID, crewID, count, ctx)
	return err
}

func (c *Coordinator) crewIDForIncident(incidentID string) string {
	if unit := c.unitForIncident(incidentID); unit != nil && len(unit.AssignedCrew) > 0 {
		return unit.AssignedCrew[0]
	}
	if crew := c.crew.Generated(); len(crew) > 0 {
		return crew[c.src.Rand().Intn(len(crew))].ID
	}
	return c.src.NewID(util.PrefixCrew)
}

func (c *Coordinator) unitForIncident(incidentID string) *models.Unit {
	for _, unit := range c.units.Generated() {
		if unit.CurrentIncidentID != nil && *unit.CurrentIncidentID == incidentID {
			return unit
		}
	}
	return nil
}

// AssignRelationships links incidents to units, crew, and destination
// hospitals in a single pass over incidents in generation order. When
// no unit is available the incident's references stay nil; this is a
// valid outcome, not an error. Every incident gets an explicit
// assignment record even when all links are empty.
func (c *Coordinator) AssignRelationships() {
	for _, incident := range c.incidents.Generated() {
		assignment := &Assignment{
			IncidentID: incident.ID,
			AssignedAt: c.startedAt,
		}

		if unit := c.pickAvailableUnit(); unit != nil {
			incident.AssignedUnitID = &unit.ID
			if err := c.units.Transition(unit, models.UnitEnRoute, &incident.ID, &incident.Location.Address); err != nil {
				c.log.Warn("unit transition failed", "unit", unit.ID, "error", err)
			}
			c.staffUnit(unit)
			assignment.UnitID = &unit.ID
			assignment.CrewIDs = append(assignment.CrewIDs, unit.AssignedCrew...)
		} else {
			c.log.Debug("no unit available", "incident", incident.ID)
		}

		if hospital := c.SelectHospital(incident); hospital != nil {
			incident.DestinationHospital = &hospital.ID
			assignment.HospitalID = &hospital.ID
		}

		c.assignments[incident.ID] = assignment
	}
}

func (c *Coordinator) pickAvailableUnit() *models.Unit {
	available := c.units.Available()
	if len(available) == 0 {
		return nil
	}
	return available[c.src.Rand().Intn(len(available))]
}

// Assignments returns the explicit assignment table keyed by incident ID.
func (c *Coordinator) Assignments() map[string]*Assignment {
	return c.assignments
}

// SelectHospital picks a destination for an incident by specialty need,
// walking a fallback chain: cardiac cases go to cardiac centers,
// pediatric patients to pediatric hospitals, trauma and injury
// accidents to trauma centers; then general hospitals, then any
// facility still accepting, then the first generated hospital. Returns
// nil only when no hospitals exist.
func (c *Coordinator) SelectHospital(incident *models.Incident) *models.Hospital {
	if needed, ok := c.specialtyNeeded(incident); ok {
		if h := c.pickHospital(c.hospitals.ByType(needed)); h != nil {
			return h
		}
	}
	if h := c.pickHospital(c.hospitals.ByType(models.HospitalGeneral)); h != nil {
		return h
	}
	if h := c.pickHospital(c.hospitals.Accepting()); h != nil {
		return h
	}
	if all := c.hospitals.Generated(); len(all) > 0 {
		return all[0]
	}
	return nil
}

func (c *Coordinator) specialtyNeeded(incident *models.Incident) (models.HospitalType, bool) {
	emergency := string(incident.EmergencyType)
	switch {
	case strings.Contains(emergency, "Cardiac") || strings.Contains(emergency, "Heart"):
		return models.HospitalCardiac, true
	case incident.Caller.Age < 18:
		return models.HospitalPediatric, true
	case strings.Contains(emergency, "Trauma") || incident.EmergencyType == models.EmergencyAccidentInjuries:
		return models.HospitalTrauma, true
	default:
		return "", false
	}
}

func (c *Coordinator) pickHospital(candidates []*models.Hospital) *models.Hospital {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[c.src.Rand().Intn(len(candidates))]
}

// ClosestHospital returns the generated hospital nearest to the given
// coordinates, or nil when none exist. Query helper only; assignment
// uses SelectHospital's specialty chain.
func (c *Coordinator) ClosestHospital(coords models.Coordinates) *models.Hospital {
	var closest *models.Hospital
	var best float64
	for _, h := range c.hospitals.Generated() {
		d := coords.DistanceTo(h.Coordinates)
		if closest == nil || d < best {
			closest, best = h, d
		}
	}
	return closest
}
