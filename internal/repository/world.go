package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/database"
	"github.com/emsim/emsim/internal/sim"
)

// Store bundles the per-entity repositories over one database.
type Store struct {
	db *database.DB

	Incidents *IncidentRepository
	Crew      *CrewRepository
	Units     *UnitRepository
	Hospitals *HospitalRepository
	Notes     *NoteRepository
}

// NewStore creates a store over an open database.
func NewStore(db *database.DB) *Store {
	return &Store{
		db:        db,
		Incidents: NewIncidentRepository(db.DB),
		Crew:      NewCrewRepository(db.DB),
		Units:     NewUnitRepository(db.DB),
		Hospitals: NewHospitalRepository(db.DB),
		Notes:     NewNoteRepository(db.DB),
	}
}

// SaveWorld persists a complete generated world, including the
// assignment table, in a single transaction. Hospitals, crew, and units
// go first so incident references resolve.
func (s *Store) SaveWorld(ctx context.Context, world *sim.World, assignments map[string]*sim.Assignment) error {
	return s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		for _, hospital := range world.Hospitals {
			if err := s.Hospitals.Create(ctx, tx, hospital); err != nil {
				return fmt.Errorf("hospital %s: %w", hospital.ID, err)
			}
		}
		for _, member := range world.Crew {
			if err := s.Crew.Create(ctx, tx, member); err != nil {
				return fmt.Errorf("crew member %s: %w", member.ID, err)
			}
		}
		for _, unit := range world.Units {
			if err := s.Units.Create(ctx, tx, unit); err != nil {
				return fmt.Errorf("unit %s: %w", unit.ID, err)
			}
		}
		for _, incident := range world.Incidents {
			if err := s.Incidents.Create(ctx, tx, incident); err != nil {
				return fmt.Errorf("incident %s: %w", incident.ID, err)
			}
		}
		for _, note := range world.Notes {
			if err := s.Notes.Create(ctx, tx, note); err != nil {
				return fmt.Errorf("provider note %s: %w", note.ID, err)
			}
		}
		for _, incident := range world.Incidents {
			assignment, ok := assignments[incident.ID]
			if !ok {
				continue
			}
			if err := insertAssignment(ctx, tx, assignment); err != nil {
				return fmt.Errorf("assignment %s: %w", assignment.IncidentID, err)
			}
		}
		return nil
	})
}

func insertAssignment(ctx context.Context, tx *sql.Tx, a *sim.Assignment) error {
	crewIDs, err := encodeList(a.CrewIDs)
	if err != nil {
		return fmt.Errorf("encoding crew ids: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO incident_assignments (incident_id, unit_id, crew_ids, hospital_id, assigned_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.IncidentID,
		a.UnitID,
		crewIDs,
		a.HospitalID,
		a.AssignedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}
