package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/models"
)

// NoteRepository handles provider note data access.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new provider note repository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, incident_id, crew_id, type, content, priority,
	requires_followup, created_at`

// Create inserts a new provider note.
func (r *NoteRepository) Create(ctx context.Context, tx *sql.Tx, note *models.ProviderNote) error {
	if err := note.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO provider_notes (` + noteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := writerFor(r.db, tx).ExecContext(ctx, query,
		note.ID,
		note.IncidentID,
		note.CrewID,
		string(note.Type),
		note.Content,
		string(note.Priority),
		note.RequiresFollowup,
		note.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting provider note: %w", err)
	}
	return nil
}

// GetByID retrieves a provider note by ID.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*models.ProviderNote, error) {
	query := `SELECT ` + noteColumns + ` FROM provider_notes WHERE id = ?`
	return scanNote(r.db.QueryRowContext(ctx, query, id))
}

// ListByIncident retrieves all notes for an incident in creation order.
func (r *NoteRepository) ListByIncident(ctx context.Context, incidentID string) ([]*models.ProviderNote, error) {
	query := `SELECT ` + noteColumns + `
		FROM provider_notes
		WHERE incident_id = ?
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("querying provider notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.ProviderNote
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating provider notes: %w", err)
	}
	return notes, nil
}

// Count returns the total number of provider notes.
func (r *NoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM provider_notes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting provider notes: %w", err)
	}
	return count, nil
}

func scanNote(row rowScanner) (*models.ProviderNote, error) {
	var note models.ProviderNote
	var noteType, priority, createdAt string

	err := row.Scan(
		&note.ID, &note.IncidentID, &note.CrewID,
		&noteType, &note.Content, &priority,
		&note.RequiresFollowup, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("provider note not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning provider note: %w", err)
	}

	note.Type = models.NoteType(noteType)
	note.Priority = models.NotePriority(priority)

	note.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &note, nil
}
