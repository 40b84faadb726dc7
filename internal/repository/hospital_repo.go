package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/models"
)

// HospitalRepository handles hospital data access.
type HospitalRepository struct {
	db *sql.DB
}

// NewHospitalRepository creates a new hospital repository.
func NewHospitalRepository(db *sql.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

const hospitalColumns = `id, name, type, address, latitude, longitude, phone,
	specialties, total_capacity, current_capacity, ed_status, average_wait_time,
	helicopter_pad, burn_unit, stroke_center, created_at`

// Create inserts a new hospital.
func (r *HospitalRepository) Create(ctx context.Context, tx *sql.Tx, hospital *models.Hospital) error {
	if err := hospital.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	specialties, err := encodeList(hospital.Specialties)
	if err != nil {
		return fmt.Errorf("encoding specialties: %w", err)
	}

	query := `
		INSERT INTO hospitals (` + hospitalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = writerFor(r.db, tx).ExecContext(ctx, query,
		hospital.ID,
		hospital.Name,
		string(hospital.Type),
		hospital.Address,
		hospital.Coordinates.Latitude,
		hospital.Coordinates.Longitude,
		hospital.Phone,
		specialties,
		hospital.TotalCapacity,
		hospital.CurrentCapacity,
		string(hospital.EDStatus),
		hospital.AverageWaitTime,
		hospital.HelicopterPad,
		hospital.BurnUnit,
		hospital.StrokeCenter,
		hospital.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting hospital: %w", err)
	}
	return nil
}

// GetByID retrieves a hospital by ID.
func (r *HospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = ?`
	return scanHospital(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves hospitals ordered by name.
func (r *HospitalRepository) List(ctx context.Context, page models.Pagination) ([]*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + `
		FROM hospitals
		ORDER BY name, id
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying hospitals: %w", err)
	}
	defer rows.Close()

	var hospitals []*models.Hospital
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, err
		}
		hospitals = append(hospitals, hospital)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hospitals: %w", err)
	}
	return hospitals, nil
}

// Count returns the total number of hospitals.
func (r *HospitalRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM hospitals").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting hospitals: %w", err)
	}
	return count, nil
}

func scanHospital(row rowScanner) (*models.Hospital, error) {
	var hospital models.Hospital
	var hospitalType, edStatus, createdAt string
	var specialties sql.NullString

	err := row.Scan(
		&hospital.ID, &hospital.Name, &hospitalType,
		&hospital.Address,
		&hospital.Coordinates.Latitude, &hospital.Coordinates.Longitude,
		&hospital.Phone, &specialties,
		&hospital.TotalCapacity, &hospital.CurrentCapacity,
		&edStatus, &hospital.AverageWaitTime,
		&hospital.HelicopterPad, &hospital.BurnUnit, &hospital.StrokeCenter,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("hospital not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning hospital: %w", err)
	}

	hospital.Type = models.HospitalType(hospitalType)
	hospital.EDStatus = models.EDStatus(edStatus)

	hospital.Specialties, err = decodeList(specialties)
	if err != nil {
		return nil, fmt.Errorf("decoding specialties: %w", err)
	}
	hospital.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &hospital, nil
}
