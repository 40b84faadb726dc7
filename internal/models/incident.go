package models

import (
	"fmt"
	"time"
)

// EmergencyType is the dispatch classification of an incident.
type EmergencyType string

// Medical emergency types.
const (
	EmergencyCardiacArrest     EmergencyType = "Cardiac Arrest"
	EmergencyHeartAttack       EmergencyType = "Heart Attack Symptoms"
	EmergencyStroke            EmergencyType = "Stroke Symptoms"
	EmergencyRespiratory       EmergencyType = "Respiratory Distress"
	EmergencyRespiratoryArrest EmergencyType = "Respiratory Arrest"
	EmergencyDiabetic          EmergencyType = "Diabetic Emergency"
	EmergencySeizure           EmergencyType = "Seizure Emergency"
	EmergencyUnresponsive      EmergencyType = "Unconscious/Unresponsive"
	EmergencyMentalHealth      EmergencyType = "Mental Health Crisis"
	EmergencyPediatric         EmergencyType = "Pediatric Emergency"
	EmergencyDOA               EmergencyType = "DOA"
	EmergencySevereBleeding    EmergencyType = "Severe Bleeding"
	EmergencyAllergicReaction  EmergencyType = "Allergic Reaction"
	EmergencyOverdose          EmergencyType = "Overdose/Poisoning"
	EmergencyHeatStroke        EmergencyType = "Heat Stroke"
	EmergencyHypothermia       EmergencyType = "Hypothermia"
	EmergencyChildbirth        EmergencyType = "Childbirth/Labor"
	EmergencyElderlyFall       EmergencyType = "Fall (Elderly)"
)

// Non-medical emergency types.
const (
	EmergencyAccidentInjuries   EmergencyType = "Car Accident With Injuries"
	EmergencyAccidentNoInjuries EmergencyType = "Car Accident Without Injuries"
	EmergencyMassCasualty       EmergencyType = "Mass Casualty Event"
	EmergencyShooting           EmergencyType = "Shooting Incident"
	EmergencyConstructionFall   EmergencyType = "Fall (Construction)"
	EmergencyDrowning           EmergencyType = "Drowning"
	EmergencyFire               EmergencyType = "Fire-Related Incident"
	EmergencyTransport          EmergencyType = "Non-Emergency Transport"
	EmergencyInformation        EmergencyType = "Information Request"
	EmergencyTrauma             EmergencyType = "Trauma"
	EmergencySportsInjury       EmergencyType = "Sports Injury"
)

// MedicalEmergencies lists the emergency types with a medical etiology.
var MedicalEmergencies = []EmergencyType{
	EmergencyCardiacArrest, EmergencyHeartAttack, EmergencyStroke,
	EmergencyRespiratory, EmergencyRespiratoryArrest, EmergencyDiabetic,
	EmergencySeizure, EmergencyUnresponsive, EmergencyMentalHealth,
	EmergencyPediatric, EmergencyDOA, EmergencySevereBleeding,
	EmergencyAllergicReaction, EmergencyOverdose, EmergencyHeatStroke,
	EmergencyHypothermia, EmergencyChildbirth, EmergencyElderlyFall,
}

// NonMedicalEmergencies lists trauma, rescue, and service emergency types.
var NonMedicalEmergencies = []EmergencyType{
	EmergencyAccidentInjuries, EmergencyAccidentNoInjuries,
	EmergencyMassCasualty, EmergencyShooting, EmergencyConstructionFall,
	EmergencyDrowning, EmergencyFire, EmergencyTransport,
	EmergencyInformation, EmergencyTrauma, EmergencySportsInjury,
}

// AllEmergencyTypes returns the full catalog of emergency types.
func AllEmergencyTypes() []EmergencyType {
	all := make([]EmergencyType, 0, len(MedicalEmergencies)+len(NonMedicalEmergencies))
	all = append(all, MedicalEmergencies...)
	all = append(all, NonMedicalEmergencies...)
	return all
}

// Valid returns true if the emergency type is in the catalog.
func (e EmergencyType) Valid() bool {
	for _, t := range MedicalEmergencies {
		if t == e {
			return true
		}
	}
	for _, t := range NonMedicalEmergencies {
		if t == e {
			return true
		}
	}
	return false
}

// IncidentStatus is the lifecycle state of an incident.
type IncidentStatus string

const (
	IncidentDispatched   IncidentStatus = "dispatched"
	IncidentEnRoute      IncidentStatus = "en-route"
	IncidentOnScene      IncidentStatus = "on-scene"
	IncidentTransporting IncidentStatus = "transporting"
	IncidentClosed       IncidentStatus = "closed"
)

// Valid returns true if the incident status is a valid value.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentDispatched, IncidentEnRoute, IncidentOnScene,
		IncidentTransporting, IncidentClosed:
		return true
	default:
		return false
	}
}

// Caller holds the 911 caller's demographics and history tag.
type Caller struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Sex            Sex    `json:"sex"`
	Phone          string `json:"phone"`
	MedicalHistory string `json:"medical_history"`
}

// VitalSigns is a single set of field-recorded vitals.
type VitalSigns struct {
	SystolicBP       int     `json:"systolic_bp"`
	DiastolicBP      int     `json:"diastolic_bp"`
	HeartRate        int     `json:"heart_rate"`
	RespiratoryRate  int     `json:"respiratory_rate"`
	Temperature      float64 `json:"temperature"`
	OxygenSaturation int     `json:"oxygen_saturation"`
}

// BloodPressure renders the vitals as a conventional "sys/dia" string.
func (v VitalSigns) BloodPressure() string {
	return fmt.Sprintf("%d/%d", v.SystolicBP, v.DiastolicBP)
}

// PatientCondition is the field assessment of the patient.
type PatientCondition struct {
	MentalStatus  string `json:"mental_status"`
	PainLevel     int    `json:"pain_level"`
	Consciousness string `json:"consciousness"`
	Breathing     string `json:"breathing"`
	Circulation   string `json:"circulation"`
}

// Incident represents a single synthetic emergency call.
type Incident struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Caller        Caller           `json:"caller"`
	Location      Location         `json:"location"`
	EmergencyType EmergencyType    `json:"emergency_type"`
	Priority      int              `json:"priority"`
	OperatorNotes string           `json:"operator_notes,omitempty"`
	Symptoms      []string         `json:"symptoms"`
	Vitals        VitalSigns       `json:"vital_signs"`
	Condition     PatientCondition `json:"patient_condition"`
	Status        IncidentStatus   `json:"status"`

	// Back-references, set during relationship assignment.
	AssignedUnitID      *string `json:"assigned_unit_id,omitempty"`
	DestinationHospital *string `json:"destination_hospital_id,omitempty"`
}

// Validate checks if the incident data is valid.
func (i *Incident) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("id is required")
	}
	if i.CreatedAt.IsZero() {
		return fmt.Errorf("created_at is required")
	}
	if !i.EmergencyType.Valid() {
		return fmt.Errorf("invalid emergency_type: %s", i.EmergencyType)
	}
	if i.Priority < 1 || i.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5, got %d", i.Priority)
	}
	if i.Caller.Name == "" {
		return fmt.Errorf("caller name is required")
	}
	if i.Caller.Age < 0 || i.Caller.Age > 120 {
		return fmt.Errorf("caller age must be between 0 and 120, got %d", i.Caller.Age)
	}
	if !i.Caller.Sex.Valid() {
		return fmt.Errorf("invalid caller sex: %s", i.Caller.Sex)
	}
	if i.Location.Address == "" {
		return fmt.Errorf("location address is required")
	}
	if !i.Status.Valid() {
		return fmt.Errorf("invalid status: %s", i.Status)
	}
	if i.Condition.PainLevel < 0 || i.Condition.PainLevel > 10 {
		return fmt.Errorf("pain_level must be between 0 and 10, got %d", i.Condition.PainLevel)
	}
	return nil
}

// IsAssigned reports whether a unit has been bound to this incident.
func (i *Incident) IsAssigned() bool {
	return i.AssignedUnitID != nil
}
