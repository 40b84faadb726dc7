package gen

import (
	"fmt"
	"strings"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// NoteContext carries incident details a renderer may fold into note
// content. All fields are optional; renderers fall back to generated
// values.
type NoteContext struct {
	UnitNumber   string
	HospitalName string
	Vitals       *models.VitalSigns
	Emergency    models.EmergencyType
}

// ContentRenderer produces the body text of a provider note. The
// default renderer writes plain narrative sentences; alternative
// renderers can plug in without touching generation.
type ContentRenderer interface {
	Render(src *Source, noteType models.NoteType, ctx NoteContext) string
}

// NotesGenerator produces provider notes for incidents.
type NotesGenerator struct {
	src       *Source
	now       time.Time
	renderer  ContentRenderer
	generated []*models.ProviderNote
}

// NewNotesGenerator creates a notes generator with the default narrative
// renderer.
func NewNotesGenerator(src *Source, now time.Time) *NotesGenerator {
	return &NotesGenerator{src: src, now: now, renderer: narrativeRenderer{}}
}

// WithRenderer swaps the content renderer.
func (g *NotesGenerator) WithRenderer(r ContentRenderer) *NotesGenerator {
	g.renderer = r
	return g
}

// NoteTypeForIndex returns the note type for the i-th note of an
// incident: arrival first, assessment second, then a treatment or
// transport entry, then any follow-up category.
func (g *NotesGenerator) NoteTypeForIndex(i int) models.NoteType {
	switch i {
	case 0:
		return models.NoteArrival
	case 1:
		return models.NoteAssessment
	case 2:
		return pick(g.src.rng, []models.NoteType{models.NoteTreatment, models.NoteTransport})
	default:
		return pick(g.src.rng, []models.NoteType{
			models.NoteTreatment, models.NoteTransport,
			models.NoteHandoff, models.NoteComplication,
		})
	}
}

// Generate produces one valid provider note. Single regeneration retry
// on validation failure, then ValidationError.
func (g *NotesGenerator) Generate(incidentID, crewID string, noteType models.NoteType, ctx NoteContext) (*models.ProviderNote, error) {
	note := g.draw(incidentID, crewID, noteType, ctx)
	if err := note.Validate(); err != nil {
		note = g.draw(incidentID, crewID, noteType, ctx)
		if err := note.Validate(); err != nil {
			return nil, &ValidationError{Kind: "provider note", Err: err}
		}
	}

	g.generated = append(g.generated, note)
	return note, nil
}

// ForIncident generates the note sequence for one incident, count notes
// long, all attributed to the given crew member.
func (g *NotesGenerator) ForIncident(incidentID, crewID string, count int, ctx NoteContext) ([]*models.ProviderNote, error) {
	notes := make([]*models.ProviderNote, 0, count)
	for i := 0; i < count; i++ {
		note, err := g.Generate(incidentID, crewID, g.NoteTypeForIndex(i), ctx)
		if err != nil {
			return notes, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (g *NotesGenerator) draw(incidentID, crewID string, noteType models.NoteType, ctx NoteContext) *models.ProviderNote {
	return &models.ProviderNote{
		ID:         g.src.NewID(util.PrefixNote),
		IncidentID: incidentID,
		CrewID:     crewID,
		Type:       noteType,
		Content:    g.renderer.Render(g.src, noteType, ctx),
		Priority:   noteType.Priority(),
		RequiresFollowup: noteType == models.NoteTreatment ||
			noteType == models.NoteComplication,
		CreatedAt: g.now,
	}
}

// Generated returns all notes produced so far, in generation order.
func (g *NotesGenerator) Generated() []*models.ProviderNote {
	return g.generated
}

// NoteStats aggregates the generated notes.
type NoteStats struct {
	Total            int
	Urgent           int
	RequiresFollowup int
	ByType           map[models.NoteType]int
	ByPriority       map[models.NotePriority]int
}

// Stats computes aggregate statistics over the generated notes.
func (g *NotesGenerator) Stats() NoteStats {
	stats := NoteStats{
		Total:      len(g.generated),
		ByType:     make(map[models.NoteType]int),
		ByPriority: make(map[models.NotePriority]int),
	}

	for _, note := range g.generated {
		if note.IsUrgent() {
			stats.Urgent++
		}
		if note.RequiresFollowup {
			stats.RequiresFollowup++
		}
		stats.ByType[note.Type]++
		stats.ByPriority[note.Priority]++
	}
	return stats
}

// narrativeRenderer is the default plain-text note content renderer.
type narrativeRenderer struct{}

var (
	sceneConditions   = []string{"safe", "controlled", "chaotic", "well-lit", "dark"}
	patientConditions = []string{"Stable", "Unstable", "Critical", "Improving", "Deteriorating"}
	treatmentResponse = []string{"positive", "partial", "no response", "excellent"}
	staffRoles        = []string{"ED physician", "charge nurse", "resident", "attending"}
	transportModes    = []string{"ground ambulance", "ALS transport", "BLS transport"}

	treatments = []string{
		"Oxygen therapy", "IV access", "Cardiac monitoring", "Splinting",
		"Wound care", "Medication administration", "Airway management",
		"Pain management", "Fluid resuscitation",
	}
	medications = []string{
		"Aspirin", "Nitroglycerin", "Albuterol", "Epinephrine",
		"Morphine", "Fentanyl", "Naloxone", "Glucagon", "Normal saline",
	}
	complications = []string{
		"Patient became unresponsive", "Vital signs deteriorated",
		"Equipment malfunction", "IV access difficulty",
		"Patient became combative", "Allergic reaction to medication",
	}
)

func (narrativeRenderer) Render(src *Source, noteType models.NoteType, ctx NoteContext) string {
	unit := ctx.UnitNumber
	if unit == "" {
		unit = fmt.Sprintf("Unit-%03d", src.intBetween(1, 999))
	}
	hospital := ctx.HospitalName
	if hospital == "" {
		hospital = HospitalSites[0].Name
	}

	switch noteType {
	case models.NoteArrival:
		return fmt.Sprintf("%s arrived on scene. Scene appears %s. Initial assessment beginning.",
			unit, pick(src.rng, sceneConditions))
	case models.NoteAssessment:
		vitals := ctx.Vitals
		if vitals == nil {
			v := DeriveVitals(src, ctx.Emergency, src.intBetween(18, 80))
			vitals = &v
		}
		return fmt.Sprintf("Patient %s. Vital signs: BP %s, HR %d, RR %d, O2 %d%%.",
			strings.ToLower(pick(src.rng, patientConditions)),
			vitals.BloodPressure(), vitals.HeartRate,
			vitals.RespiratoryRate, vitals.OxygenSaturation)
	case models.NoteTreatment:
		if src.rng.Intn(2) == 0 {
			return fmt.Sprintf("Treatment initiated: %s. Patient response: %s.",
				joinSample(src, treatments, src.intBetween(1, 3)),
				pick(src.rng, treatmentResponse))
		}
		return fmt.Sprintf("Medications administered: %s. Patient tolerating well.",
			joinSample(src, medications, src.intBetween(1, 2)))
	case models.NoteTransport:
		return fmt.Sprintf("Patient transported to %s via %s. ETA: %d minutes.",
			hospital, pick(src.rng, transportModes), src.intBetween(5, 25))
	case models.NoteHandoff:
		return fmt.Sprintf("Report given to %s at %s. Patient stable upon arrival. Transfer complete.",
			pick(src.rng, staffRoles), hospital)
	case models.NoteComplication:
		return fmt.Sprintf("Complication noted: %s. Additional interventions required.",
			pick(src.rng, complications))
	default:
		return "Note recorded."
	}
}

// joinSample draws n distinct entries from items and joins them.
func joinSample(src *Source, items []string, n int) string {
	if n > len(items) {
		n = len(items)
	}
	idx := src.rng.Perm(len(items))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = items[j]
	}
	return strings.Join(out, ", ")
}
