package models

import (
	"fmt"
	"time"
)

// UnitType categorizes a response unit. Crew size and capability set are
// fixed per type.
type UnitType string

const (
	UnitALS        UnitType = "ALS"
	UnitBLS        UnitType = "BLS"
	UnitSupervisor UnitType = "SUPERVISOR"
	UnitSpecialty  UnitType = "SPECIALTY"
)

// UnitTypes lists all unit types in catalog order.
var UnitTypes = []UnitType{UnitALS, UnitBLS, UnitSupervisor, UnitSpecialty}

// Valid returns true if the unit type is a valid value.
func (t UnitType) Valid() bool {
	_, ok := UnitTypeSpecs[t]
	return ok
}

// UnitTypeSpec is the static catalog entry for a unit type.
type UnitTypeSpec struct {
	Name         string
	CrewSize     int
	Capabilities []string
	VehicleType  string
}

// UnitTypeSpecs is the fixed lookup table keyed by unit type.
var UnitTypeSpecs = map[UnitType]UnitTypeSpec{
	UnitALS: {
		Name:         "Advanced Life Support",
		CrewSize:     2,
		Capabilities: []string{"IV Therapy", "Cardiac Monitoring", "Advanced Airway", "Medication Administration"},
		VehicleType:  "Type I Ambulance",
	},
	UnitBLS: {
		Name:         "Basic Life Support",
		CrewSize:     2,
		Capabilities: []string{"Basic Assessment", "CPR", "Splinting", "Oxygen Therapy"},
		VehicleType:  "Type III Ambulance",
	},
	UnitSupervisor: {
		Name:         "Field Supervisor",
		CrewSize:     1,
		Capabilities: []string{"Supervision", "Scene Management", "Quality Assurance"},
		VehicleType:  "SUV/Command Vehicle",
	},
	UnitSpecialty: {
		Name:         "Specialty Unit",
		CrewSize:     3,
		Capabilities: []string{"Critical Care", "Neonatal Transport", "Trauma Care"},
		VehicleType:  "Critical Care Ambulance",
	},
}

// UnitStatus is the operational state of a unit.
type UnitStatus string

const (
	UnitAvailable    UnitStatus = "Available"
	UnitEnRoute      UnitStatus = "En Route"
	UnitOnScene      UnitStatus = "On Scene"
	UnitTransporting UnitStatus = "Transporting"
	UnitAtHospital   UnitStatus = "At Hospital"
	UnitReturning    UnitStatus = "Returning"
	UnitOutOfService UnitStatus = "Out of Service"
	UnitMaintenance  UnitStatus = "Maintenance"
)

// UnitStatuses lists all unit statuses.
var UnitStatuses = []UnitStatus{
	UnitAvailable, UnitEnRoute, UnitOnScene, UnitTransporting,
	UnitAtHospital, UnitReturning, UnitOutOfService, UnitMaintenance,
}

// Valid returns true if the status is a valid value.
func (s UnitStatus) Valid() bool {
	for _, v := range UnitStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Available reports whether a unit in this status can take a dispatch.
// Availability is always a pure function of status.
func (s UnitStatus) Available() bool {
	return s == UnitAvailable || s == UnitReturning
}

// OnIncident reports whether this status carries an incident assignment.
func (s UnitStatus) OnIncident() bool {
	return s == UnitEnRoute || s == UnitOnScene || s == UnitTransporting
}

// Station is a fixed unit home base.
type Station struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Unit represents a simulated response vehicle and its team.
type Unit struct {
	ID     string   `json:"id"`
	Number string   `json:"number"`
	Type   UnitType `json:"type"`

	VehicleYear int     `json:"vehicle_year"`
	Mileage     int     `json:"mileage"`
	Station     Station `json:"station"`

	CurrentLocation Coordinates `json:"current_location"`
	Status          UnitStatus  `json:"status"`

	// AssignedCrew holds crew member IDs, at most Spec().CrewSize entries.
	AssignedCrew []string `json:"assigned_crew"`

	CurrentIncidentID *string    `json:"current_incident_id,omitempty"`
	Destination       *string    `json:"destination,omitempty"`
	EstimatedArrival  *time.Time `json:"estimated_arrival,omitempty"`
	LastIncidentTime  *time.Time `json:"last_incident_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Spec returns the static catalog entry for this unit's type.
func (u *Unit) Spec() UnitTypeSpec {
	return UnitTypeSpecs[u.Type]
}

// IsAvailable reports whether the unit can take a dispatch. Derived from
// status, never stored.
func (u *Unit) IsAvailable() bool {
	return u.Status.Available()
}

// Validate checks if the unit data is valid.
func (u *Unit) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("id is required")
	}
	if u.Number == "" {
		return fmt.Errorf("number is required")
	}
	if !u.Type.Valid() {
		return fmt.Errorf("invalid unit type: %s", u.Type)
	}
	if !u.Status.Valid() {
		return fmt.Errorf("invalid status: %s", u.Status)
	}
	if len(u.AssignedCrew) > u.Spec().CrewSize {
		return fmt.Errorf("assigned crew %d exceeds crew size %d for type %s",
			len(u.AssignedCrew), u.Spec().CrewSize, u.Type)
	}
	if u.Status.OnIncident() && u.CurrentIncidentID == nil {
		return fmt.Errorf("status %s requires a current incident", u.Status)
	}
	return nil
}
