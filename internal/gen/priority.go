package gen

import (
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// Priority tiers. The scorer applies these in order; later adjustments
// only tighten urgency relative to the base mapping.
var (
	// lifeThreatTypes map straight to priority 1.
	lifeThreatTypes = map[models.EmergencyType]bool{
		models.EmergencyCardiacArrest:     true,
		models.EmergencyDOA:               true,
		models.EmergencyUnresponsive:      true,
		models.EmergencyHeartAttack:       true,
		models.EmergencyStroke:            true,
		models.EmergencySevereBleeding:    true,
		models.EmergencyRespiratoryArrest: true,
	}

	// urgentTypes map to priority 2.
	urgentTypes = map[models.EmergencyType]bool{
		models.EmergencyDiabetic:     true,
		models.EmergencySeizure:      true,
		models.EmergencyMentalHealth: true,
		models.EmergencyElderlyFall:  true,
		models.EmergencyPediatric:    true,
		models.EmergencySportsInjury: true,
	}

	// lowAcuityTypes map to priority 4.
	lowAcuityTypes = map[models.EmergencyType]bool{
		models.EmergencyTransport:   true,
		models.EmergencyInformation: true,
	}

	// nightCapTypes are capped at priority 2 during night hours.
	nightCapTypes = map[models.EmergencyType]bool{
		models.EmergencyMentalHealth: true,
		models.EmergencyOverdose:     true,
	}

	// severeHistory tags raise urgency one step when the caller reports
	// them.
	severeHistory = map[string]bool{
		"Heart Disease":   true,
		"Diabetes Type 1": true,
		"Epilepsy":        true,
	}
)

// ScorePriority maps an emergency to a dispatch priority from 1 (most
// urgent) to 5. The adjustments are sequential, not a weighted sum:
// base type mapping, then a single age adjustment, then the night-hours
// cap, then the comorbidity adjustment, then a final clamp to [1, 5].
// The function is pure; identical inputs always yield the same score.
func ScorePriority(emergencyType models.EmergencyType, caller models.Caller, at time.Time) int {
	priority := 3

	switch {
	case lifeThreatTypes[emergencyType]:
		priority = 1
	case urgentTypes[emergencyType]:
		priority = 2
	case emergencyType == models.EmergencyAccidentInjuries:
		priority = 2
	case emergencyType == models.EmergencyAccidentNoInjuries:
		priority = 3
	case lowAcuityTypes[emergencyType]:
		priority = 4
	}

	// Pediatric and elderly callers move one step up, once.
	if (caller.Age < 18 || caller.Age > 65) && priority > 2 {
		priority--
	}

	if util.IsNightHours(at) && nightCapTypes[emergencyType] && priority > 2 {
		priority = 2
	}

	if severeHistory[caller.MedicalHistory] && priority > 2 {
		priority--
	}

	if priority < 1 {
		priority = 1
	}
	if priority > 5 {
		priority = 5
	}
	return priority
}
