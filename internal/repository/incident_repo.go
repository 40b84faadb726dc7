package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/models"
)

// IncidentRepository handles incident data access.
type IncidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository creates a new incident repository.
func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

const incidentColumns = `id, created_at, emergency_type, priority, status,
	caller_name, caller_age, caller_sex, caller_phone, medical_history,
	address, latitude, longitude, operator_notes, symptoms,
	systolic_bp, diastolic_bp, heart_rate, respiratory_rate, temperature, oxygen_saturation,
	mental_status, pain_level, consciousness, breathing, circulation,
	assigned_unit_id, destination_hospital_id`

// Create inserts a new incident.
func (r *IncidentRepository) Create(ctx context.Context, tx *sql.Tx, incident *models.Incident) error {
	if err := incident.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	symptoms, err := encodeList(incident.Symptoms)
	if err != nil {
		return fmt.Errorf("encoding symptoms: %w", err)
	}

	query := `
		INSERT INTO incidents (` + incidentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = writerFor(r.db, tx).ExecContext(ctx, query,
		incident.ID,
		incident.CreatedAt.Format(time.RFC3339),
		string(incident.EmergencyType),
		incident.Priority,
		string(incident.Status),
		incident.Caller.Name,
		incident.Caller.Age,
		string(incident.Caller.Sex),
		incident.Caller.Phone,
		nullableString(incident.Caller.MedicalHistory),
		incident.Location.Address,
		incident.Location.Coordinates.Latitude,
		incident.Location.Coordinates.Longitude,
		nullableString(incident.OperatorNotes),
		symptoms,
		incident.Vitals.SystolicBP,
		incident.Vitals.DiastolicBP,
		incident.Vitals.HeartRate,
		incident.Vitals.RespiratoryRate,
		incident.Vitals.Temperature,
		incident.Vitals.OxygenSaturation,
		nullableString(incident.Condition.MentalStatus),
		incident.Condition.PainLevel,
		nullableString(incident.Condition.Consciousness),
		nullableString(incident.Condition.Breathing),
		nullableString(incident.Condition.Circulation),
		incident.AssignedUnitID,
		incident.DestinationHospital,
	)
	if err != nil {
		return fmt.Errorf("inserting incident: %w", err)
	}
	return nil
}

// GetByID retrieves an incident by ID.
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = ?`
	return scanIncident(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves incidents ordered by creation time.
func (r *IncidentRepository) List(ctx context.Context, page models.Pagination) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY created_at, id
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*models.Incident
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating incidents: %w", err)
	}
	return incidents, nil
}

// Count returns the total number of incidents.
func (r *IncidentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM incidents").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting incidents: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	var incident models.Incident
	var createdAt, emergencyType, status, sex string
	var medicalHistory, operatorNotes, symptoms sql.NullString
	var mentalStatus, consciousness, breathing, circulation sql.NullString
	var assignedUnit, destinationHospital sql.NullString

	err := row.Scan(
		&incident.ID, &createdAt, &emergencyType, &incident.Priority, &status,
		&incident.Caller.Name, &incident.Caller.Age, &sex,
		&incident.Caller.Phone, &medicalHistory,
		&incident.Location.Address,
		&incident.Location.Coordinates.Latitude, &incident.Location.Coordinates.Longitude,
		&operatorNotes, &symptoms,
		&incident.Vitals.SystolicBP, &incident.Vitals.DiastolicBP,
		&incident.Vitals.HeartRate, &incident.Vitals.RespiratoryRate,
		&incident.Vitals.Temperature, &incident.Vitals.OxygenSaturation,
		&mentalStatus, &incident.Condition.PainLevel,
		&consciousness, &breathing, &circulation,
		&assignedUnit, &destinationHospital,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("incident not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning incident: %w", err)
	}

	incident.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	incident.EmergencyType = models.EmergencyType(emergencyType)
	incident.Status = models.IncidentStatus(status)
	incident.Caller.Sex = models.Sex(sex)
	incident.Caller.MedicalHistory = medicalHistory.String
	incident.OperatorNotes = operatorNotes.String
	incident.Condition.MentalStatus = mentalStatus.String
	incident.Condition.Consciousness = consciousness.String
	incident.Condition.Breathing = breathing.String
	incident.Condition.Circulation = circulation.String
	incident.AssignedUnitID = stringPtr(assignedUnit)
	incident.DestinationHospital = stringPtr(destinationHospital)

	incident.Symptoms, err = decodeList(symptoms)
	if err != nil {
		return nil, fmt.Errorf("decoding symptoms: %w", err)
	}
	return &incident, nil
}
