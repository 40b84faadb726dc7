package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/emsim/emsim/internal/models"
)

// FixtureIncident creates a test incident with sensible defaults.
func FixtureIncident(overrides ...func(*models.Incident)) *models.Incident {
	id := uuid.New().String()
	now := time.Now().UTC()

	incident := &models.Incident{
		ID:        "INC-" + id[:8],
		CreatedAt: now,
		Caller: models.Caller{
			Name:           "John Smith",
			Age:            45,
			Sex:            models.SexMale,
			Phone:          "555-123-4567",
			MedicalHistory: "None",
		},
		Location: models.Location{
			Address: "100 E Main St, Downtown, Richmond, VA 23219",
			Coordinates: models.Coordinates{
				Latitude:  37.5407,
				Longitude: -77.4360,
			},
		},
		EmergencyType: models.EmergencyRespiratory,
		Priority:      3,
		OperatorNotes: "Caller reports difficulty breathing.",
		Symptoms:      []string{"Shortness of breath"},
		Vitals: models.VitalSigns{
			SystolicBP:       128,
			DiastolicBP:      82,
			HeartRate:        96,
			RespiratoryRate:  22,
			Temperature:      98.4,
			OxygenSaturation: 94,
		},
		Condition: models.PatientCondition{
			MentalStatus:  "Alert and oriented",
			PainLevel:     3,
			Consciousness: "Conscious",
			Breathing:     "Labored",
			Circulation:   "Normal",
		},
		Status: models.IncidentDispatched,
	}

	for _, override := range overrides {
		override(incident)
	}
	return incident
}

// FixtureCrewMember creates a test crew member with sensible defaults.
func FixtureCrewMember(overrides ...func(*models.CrewMember)) *models.CrewMember {
	id := uuid.New().String()
	now := time.Now().UTC()
	shift := "Day (0700-1900)"

	member := &models.CrewMember{
		ID:              "CREW-" + id[:8],
		Name:            "Sarah Johnson",
		Age:             34,
		Sex:             models.SexFemale,
		Certification:   models.CertEMTParamedic,
		Role:            models.RoleParamedic,
		Department:      "Richmond Ambulance Authority",
		YearsExperience: 8,
		HireDate:        now.AddDate(-8, 0, 0),
		Phone:           "555-234-5678",
		Email:           "sarah.johnson@richmondems.example.org",
		IsActive:        true,
		CurrentShift:    &shift,
		CreatedAt:       now,
	}

	for _, override := range overrides {
		override(member)
	}
	return member
}

// FixtureUnit creates a test unit with sensible defaults.
func FixtureUnit(overrides ...func(*models.Unit)) *models.Unit {
	id := uuid.New().String()
	now := time.Now().UTC()

	unit := &models.Unit{
		ID:          "UNIT-" + id[:8],
		Number:      "ALS-101",
		Type:        models.UnitALS,
		VehicleYear: 2021,
		Mileage:     84000,
		Station: models.Station{
			Name:    "Station 1 - Downtown",
			Address: "100 N 7th St, Richmond, VA 23219",
		},
		CurrentLocation: models.Coordinates{
			Latitude:  37.5480,
			Longitude: -77.4410,
		},
		Status:       models.UnitAvailable,
		AssignedCrew: []string{},
		CreatedAt:    now,
	}

	for _, override := range overrides {
		override(unit)
	}
	return unit
}

// FixtureHospital creates a test hospital with sensible defaults. The
// ED status is kept consistent with the bed counts.
func FixtureHospital(overrides ...func(*models.Hospital)) *models.Hospital {
	id := uuid.New().String()
	now := time.Now().UTC()

	hospital := &models.Hospital{
		ID:      "HOSP-" + id[:8],
		Name:    "VCU Medical Center",
		Type:    models.HospitalTrauma,
		Address: "1200 E Broad St, Richmond, VA 23219",
		Coordinates: models.Coordinates{
			Latitude:  37.5407,
			Longitude: -77.4348,
		},
		Phone:           "555-828-9000",
		Specialties:     []string{"Trauma Surgery", "Emergency Medicine"},
		TotalCapacity:   400,
		CurrentCapacity: 320,
		EDStatus:        models.EDOpen,
		AverageWaitTime: 45,
		HelicopterPad:   true,
		BurnUnit:        true,
		StrokeCenter:    true,
		CreatedAt:       now,
	}

	for _, override := range overrides {
		override(hospital)
	}
	return hospital
}

// FixtureNote creates a test provider note attached to the given
// incident and crew IDs.
func FixtureNote(incidentID, crewID string, overrides ...func(*models.ProviderNote)) *models.ProviderNote {
	id := uuid.New().String()

	note := &models.ProviderNote{
		ID:         "NOTE-" + id[:8],
		IncidentID: incidentID,
		CrewID:     crewID,
		Type:       models.NoteAssessment,
		Content:    "Patient stable. Vital signs: BP 128/82, HR 96, RR 22, O2 94%.",
		Priority:   models.NoteAssessment.Priority(),
		CreatedAt:  time.Now().UTC(),
	}

	for _, override := range overrides {
		override(note)
	}
	return note
}
