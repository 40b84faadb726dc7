package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// CrewRepository handles crew member data access.
type CrewRepository struct {
	db *sql.DB
}

// NewCrewRepository creates a new crew repository.
func NewCrewRepository(db *sql.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

const crewColumns = `id, name, age, sex, certification, role, department,
	years_experience, hire_date, phone, email, is_active, current_shift,
	assigned_unit_id, created_at`

// Create inserts a new crew member.
func (r *CrewRepository) Create(ctx context.Context, tx *sql.Tx, member *models.CrewMember) error {
	if err := member.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO crew_members (` + crewColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := writerFor(r.db, tx).ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Age,
		string(member.Sex),
		string(member.Certification),
		string(member.Role),
		member.Department,
		member.YearsExperience,
		util.FormatDate(member.HireDate),
		member.Phone,
		member.Email,
		member.IsActive,
		member.CurrentShift,
		member.AssignedUnitID,
		member.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting crew member: %w", err)
	}
	return nil
}

// GetByID retrieves a crew member by ID.
func (r *CrewRepository) GetByID(ctx context.Context, id string) (*models.CrewMember, error) {
	query := `SELECT ` + crewColumns + ` FROM crew_members WHERE id = ?`
	return scanCrewMember(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves crew members ordered by name.
func (r *CrewRepository) List(ctx context.Context, page models.Pagination) ([]*models.CrewMember, error) {
	query := `SELECT ` + crewColumns + `
		FROM crew_members
		ORDER BY name, id
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying crew members: %w", err)
	}
	defer rows.Close()

	var members []*models.CrewMember
	for rows.Next() {
		member, err := scanCrewMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crew members: %w", err)
	}
	return members, nil
}

// Count returns the total number of crew members.
func (r *CrewRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM crew_members").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting crew members: %w", err)
	}
	return count, nil
}

func scanCrewMember(row rowScanner) (*models.CrewMember, error) {
	var member models.CrewMember
	var sex, certification, role, hireDate, createdAt string
	var currentShift, assignedUnit sql.NullString

	err := row.Scan(
		&member.ID, &member.Name, &member.Age, &sex,
		&certification, &role, &member.Department,
		&member.YearsExperience, &hireDate,
		&member.Phone, &member.Email, &member.IsActive,
		&currentShift, &assignedUnit, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("crew member not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning crew member: %w", err)
	}

	member.Sex = models.Sex(sex)
	member.Certification = models.Certification(certification)
	member.Role = models.Role(role)
	member.CurrentShift = stringPtr(currentShift)
	member.AssignedUnitID = stringPtr(assignedUnit)

	member.HireDate, err = util.ParseDate(hireDate)
	if err != nil {
		return nil, fmt.Errorf("parsing hire_date: %w", err)
	}
	member.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &member, nil
}
