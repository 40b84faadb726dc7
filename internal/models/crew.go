package models

import (
	"fmt"
	"time"
)

// Certification is an EMS certification level.
type Certification string

const (
	CertEMTBasic        Certification = "EMT-Basic"
	CertEMTIntermediate Certification = "EMT-Intermediate"
	CertEMTParamedic    Certification = "EMT-Paramedic"
	CertCriticalCare    Certification = "Critical Care Paramedic"
	CertFlightParamedic Certification = "Flight Paramedic"
)

// Certifications lists all certification levels.
var Certifications = []Certification{
	CertEMTBasic, CertEMTIntermediate, CertEMTParamedic,
	CertCriticalCare, CertFlightParamedic,
}

// Valid returns true if the certification is a valid value.
func (c Certification) Valid() bool {
	for _, v := range Certifications {
		if v == c {
			return true
		}
	}
	return false
}

// Role is an operational crew role.
type Role string

const (
	RoleEMT                  Role = "EMT"
	RoleParamedic            Role = "Paramedic"
	RoleFieldSupervisor      Role = "Field Supervisor"
	RoleTrainingOfficer      Role = "Training Officer"
	RoleFieldTrainingOfficer Role = "Field Training Officer"
	RoleLieutenant           Role = "Lieutenant"
	RoleCaptain              Role = "Captain"
)

// Roles lists all crew roles.
var Roles = []Role{
	RoleEMT, RoleParamedic, RoleFieldSupervisor, RoleTrainingOfficer,
	RoleFieldTrainingOfficer, RoleLieutenant, RoleCaptain,
}

// Valid returns true if the role is a valid value.
func (r Role) Valid() bool {
	for _, v := range Roles {
		if v == r {
			return true
		}
	}
	return false
}

// CrewMember represents simulated EMS personnel.
type CrewMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Sex  Sex    `json:"sex"`

	Certification   Certification `json:"certification"`
	Role            Role          `json:"role"`
	Department      string        `json:"department"`
	YearsExperience int           `json:"years_experience"`
	HireDate        time.Time     `json:"hire_date"`

	Phone string `json:"phone"`
	Email string `json:"email"`

	IsActive     bool    `json:"is_active"`
	CurrentShift *string `json:"current_shift,omitempty"`

	// AssignedUnitID is the unit this member currently staffs, at most one
	// at a time. Set during relationship assignment.
	AssignedUnitID *string `json:"assigned_unit_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the crew member data is valid.
func (c *CrewMember) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Age < 18 || c.Age > 70 {
		return fmt.Errorf("age must be between 18 and 70, got %d", c.Age)
	}
	if !c.Sex.Valid() {
		return fmt.Errorf("invalid sex: %s", c.Sex)
	}
	if !c.Certification.Valid() {
		return fmt.Errorf("invalid certification: %s", c.Certification)
	}
	if !c.Role.Valid() {
		return fmt.Errorf("invalid role: %s", c.Role)
	}
	if c.YearsExperience < 0 {
		return fmt.Errorf("years_experience must be non-negative")
	}
	if c.YearsExperience > c.Age-18 {
		return fmt.Errorf("years_experience %d exceeds possible years for age %d",
			c.YearsExperience, c.Age)
	}
	return nil
}

// IsAssignable reports whether this member can be bound to a unit.
func (c *CrewMember) IsAssignable() bool {
	return c.IsActive && c.AssignedUnitID == nil
}
