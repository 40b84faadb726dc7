package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/models"
)

// UnitRepository handles response unit data access.
type UnitRepository struct {
	db *sql.DB
}

// NewUnitRepository creates a new unit repository.
func NewUnitRepository(db *sql.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

const unitColumns = `id, number, type, vehicle_year, mileage,
	station_name, station_address, latitude, longitude, status,
	assigned_crew, current_incident_id, destination,
	estimated_arrival, last_incident_time, created_at`

// Create inserts a new unit.
func (r *UnitRepository) Create(ctx context.Context, tx *sql.Tx, unit *models.Unit) error {
	if err := unit.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	crew, err := encodeList(unit.AssignedCrew)
	if err != nil {
		return fmt.Errorf("encoding assigned crew: %w", err)
	}

	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = writerFor(r.db, tx).ExecContext(ctx, query,
		unit.ID,
		unit.Number,
		string(unit.Type),
		unit.VehicleYear,
		unit.Mileage,
		unit.Station.Name,
		unit.Station.Address,
		unit.CurrentLocation.Latitude,
		unit.CurrentLocation.Longitude,
		string(unit.Status),
		crew,
		unit.CurrentIncidentID,
		unit.Destination,
		nullableTimePtr(unit.EstimatedArrival),
		nullableTimePtr(unit.LastIncidentTime),
		unit.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	return nil
}

// GetByID retrieves a unit by ID.
func (r *UnitRepository) GetByID(ctx context.Context, id string) (*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = ?`
	return scanUnit(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves units ordered by number.
func (r *UnitRepository) List(ctx context.Context, page models.Pagination) ([]*models.Unit, error) {
	query := `SELECT ` + unitColumns + `
		FROM units
		ORDER BY number, id
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating units: %w", err)
	}
	return units, nil
}

// Count returns the total number of units.
func (r *UnitRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM units").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting units: %w", err)
	}
	return count, nil
}

func scanUnit(row rowScanner) (*models.Unit, error) {
	var unit models.Unit
	var unitType, status, createdAt string
	var crew, currentIncident, destination sql.NullString
	var estimatedArrival, lastIncident sql.NullString

	err := row.Scan(
		&unit.ID, &unit.Number, &unitType,
		&unit.VehicleYear, &unit.Mileage,
		&unit.Station.Name, &unit.Station.Address,
		&unit.CurrentLocation.Latitude, &unit.CurrentLocation.Longitude,
		&status, &crew, &currentIncident, &destination,
		&estimatedArrival, &lastIncident, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unit not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning unit: %w", err)
	}

	unit.Type = models.UnitType(unitType)
	unit.Status = models.UnitStatus(status)
	unit.CurrentIncidentID = stringPtr(currentIncident)
	unit.Destination = stringPtr(destination)

	unit.AssignedCrew, err = decodeList(crew)
	if err != nil {
		return nil, fmt.Errorf("decoding assigned crew: %w", err)
	}
	if unit.AssignedCrew == nil {
		unit.AssignedCrew = []string{}
	}
	unit.EstimatedArrival, err = timePtr(estimatedArrival)
	if err != nil {
		return nil, fmt.Errorf("parsing estimated_arrival: %w", err)
	}
	unit.LastIncidentTime, err = timePtr(lastIncident)
	if err != nil {
		return nil, fmt.Errorf("parsing last_incident_time: %w", err)
	}
	unit.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &unit, nil
}
