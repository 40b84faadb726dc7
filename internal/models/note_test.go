package models

import (
	"strings"
	"testing"
	"time"
)

func TestNoteType_Priority(t *testing.T) {
	tests := []struct {
		noteType NoteType
		want     NotePriority
	}{
		{NoteArrival, NotePriorityLow},
		{NoteHandoff, NotePriorityLow},
		{NoteAssessment, NotePriorityMedium},
		{NoteTransport, NotePriorityMedium},
		{NoteTreatment, NotePriorityHigh},
		{NoteComplication, NotePriorityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.noteType), func(t *testing.T) {
			if got := tt.noteType.Priority(); got != tt.want {
				t.Errorf("NoteType.Priority() = %v, want %v", got, tt.want)
			}
		})
	}
}

func validNote() *ProviderNote {
	return &ProviderNote{
		ID:         "NOTE-a1b2c3d4",
		IncidentID: "INC-a1b2c3d4",
		CrewID:     "CREW-a1b2c3d4",
		Type:       NoteAssessment,
		Content:    "Patient stable.",
		Priority:   NotePriorityMedium,
		CreatedAt:  time.Now(),
	}
}

func TestProviderNote_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProviderNote)
		wantErr string
	}{
		{"valid note", func(n *ProviderNote) {}, ""},
		{"missing id", func(n *ProviderNote) { n.ID = "" }, "id"},
		{"missing incident", func(n *ProviderNote) { n.IncidentID = "" }, "incident_id"},
		{"missing crew", func(n *ProviderNote) { n.CrewID = "" }, "crew_id"},
		{"invalid type", func(n *ProviderNote) { n.Type = "GENERAL" }, "note type"},
		{
			"priority inconsistent with type",
			func(n *ProviderNote) { n.Priority = NotePriorityCritical },
			"priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := validNote()
			tt.mutate(note)

			err := note.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestProviderNote_IsUrgent(t *testing.T) {
	tests := []struct {
		noteType NoteType
		want     bool
	}{
		{NoteArrival, false},
		{NoteAssessment, false},
		{NoteTransport, false},
		{NoteHandoff, false},
		{NoteTreatment, true},
		{NoteComplication, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.noteType), func(t *testing.T) {
			note := validNote()
			note.Type = tt.noteType
			note.Priority = tt.noteType.Priority()

			if got := note.IsUrgent(); got != tt.want {
				t.Errorf("IsUrgent() = %v, want %v", got, tt.want)
			}
		})
	}
}
