package models

import (
	"fmt"
	"time"
)

// NoteType classifies a provider note. Notes for an incident are ordered
// ARRIVAL, ASSESSMENT, then treatment/transport and follow-up entries.
type NoteType string

const (
	NoteArrival      NoteType = "ARRIVAL"
	NoteAssessment   NoteType = "ASSESSMENT"
	NoteTreatment    NoteType = "TREATMENT"
	NoteTransport    NoteType = "TRANSPORT"
	NoteHandoff      NoteType = "HANDOFF"
	NoteComplication NoteType = "COMPLICATION"
)

// NoteTypes lists all note types.
var NoteTypes = []NoteType{
	NoteArrival, NoteAssessment, NoteTreatment,
	NoteTransport, NoteHandoff, NoteComplication,
}

// Valid returns true if the note type is a valid value.
func (t NoteType) Valid() bool {
	for _, v := range NoteTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable category name.
func (t NoteType) DisplayName() string {
	switch t {
	case NoteArrival:
		return "Unit Arrival"
	case NoteAssessment:
		return "Patient Assessment"
	case NoteTreatment:
		return "Treatment Provided"
	case NoteTransport:
		return "Transport Decision"
	case NoteHandoff:
		return "Hospital Handoff"
	case NoteComplication:
		return "Complication/Issue"
	default:
		return "Unknown"
	}
}

// NotePriority is the review priority of a provider note, derived from
// its type.
type NotePriority string

const (
	NotePriorityLow      NotePriority = "Low"
	NotePriorityMedium   NotePriority = "Medium"
	NotePriorityHigh     NotePriority = "High"
	NotePriorityCritical NotePriority = "Critical"
)

// Priority returns the review priority for this note type.
func (t NoteType) Priority() NotePriority {
	switch t {
	case NoteArrival, NoteHandoff:
		return NotePriorityLow
	case NoteAssessment, NoteTransport:
		return NotePriorityMedium
	case NoteTreatment:
		return NotePriorityHigh
	case NoteComplication:
		return NotePriorityCritical
	default:
		return NotePriorityMedium
	}
}

// ProviderNote is a field note recorded against an incident.
type ProviderNote struct {
	ID         string `json:"id"`
	IncidentID string `json:"incident_id"`
	CrewID     string `json:"crew_id"`

	Type     NoteType     `json:"type"`
	Content  string       `json:"content"`
	Priority NotePriority `json:"priority"`

	RequiresFollowup bool `json:"requires_followup"`

	CreatedAt time.Time `json:"created_at"`
}

// IsUrgent reports whether the note needs immediate review.
func (n *ProviderNote) IsUrgent() bool {
	return n.Priority == NotePriorityHigh || n.Priority == NotePriorityCritical
}

// Validate checks if the note data is valid.
func (n *ProviderNote) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("id is required")
	}
	if n.IncidentID == "" {
		return fmt.Errorf("incident_id is required")
	}
	if n.CrewID == "" {
		return fmt.Errorf("crew_id is required")
	}
	if !n.Type.Valid() {
		return fmt.Errorf("invalid note type: %s", n.Type)
	}
	if n.Priority != n.Type.Priority() {
		return fmt.Errorf("priority %s inconsistent with note type %s", n.Priority, n.Type)
	}
	return nil
}
