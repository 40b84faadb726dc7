package gen

import (
	"math"

	"github.com/emsim/emsim/internal/models"
)

// vitalRange is an inclusive integer draw range.
type vitalRange struct {
	lo, hi int
}

// baseVitals holds the age-bracket base ranges for vital generation.
type baseVitals struct {
	systolic    vitalRange
	heartRate   vitalRange
	respRate    vitalRange
	tempLo      float64
	tempHi      float64
}

func baseVitalsForAge(age int) baseVitals {
	switch {
	case age < 18: // pediatric
		return baseVitals{
			systolic:  vitalRange{90, 120},
			heartRate: vitalRange{60, 100},
			respRate:  vitalRange{16, 24},
			tempLo:    97.0, tempHi: 99.5,
		}
	case age > 65: // elderly
		return baseVitals{
			systolic:  vitalRange{110, 160},
			heartRate: vitalRange{50, 90},
			respRate:  vitalRange{14, 22},
			tempLo:    96.8, tempHi: 99.2,
		}
	default: // adult
		return baseVitals{
			systolic:  vitalRange{100, 140},
			heartRate: vitalRange{60, 100},
			respRate:  vitalRange{12, 20},
			tempLo:    97.0, tempHi: 99.0,
		}
	}
}

// DeriveVitals draws a vital-sign set for the given emergency type and
// patient age. Base ranges come from the age bracket; specific emergency
// types shift heart-rate, blood-pressure, or respiratory ranges. SpO2 is
// drawn uniformly in [85, 100] independent of the rest. Deterministic
// for a fixed source.
func DeriveVitals(src *Source, emergencyType models.EmergencyType, age int) models.VitalSigns {
	base := baseVitalsForAge(age)

	systolic := src.intBetween(base.systolic.lo, base.systolic.hi)
	heartRate := src.intBetween(base.heartRate.lo, base.heartRate.hi)
	respRate := src.intBetween(base.respRate.lo, base.respRate.hi)
	temp := roundTenth(src.floatBetween(base.tempLo, base.tempHi))

	switch emergencyType {
	case models.EmergencyCardiacArrest, models.EmergencyHeartAttack:
		heartRate = src.intBetween(120, 180)
		systolic = src.intBetween(80, 140)
	case models.EmergencyRespiratory, models.EmergencyRespiratoryArrest:
		respRate = src.intBetween(25, 40)
		heartRate = src.intBetween(100, 140)
	case models.EmergencySevereBleeding, models.EmergencyShooting:
		heartRate = src.intBetween(100, 140)
		systolic = src.intBetween(70, 110)
	case models.EmergencyDiabetic:
		heartRate = src.intBetween(90, 130)
		systolic = src.intBetween(90, 140)
	}

	return models.VitalSigns{
		SystolicBP:       systolic,
		DiastolicBP:      systolic - src.intBetween(10, 30),
		HeartRate:        heartRate,
		RespiratoryRate:  respRate,
		Temperature:      temp,
		OxygenSaturation: src.intBetween(85, 100),
	}
}

// mentalStatusByType maps emergency types to plausible mental statuses.
var mentalStatusByType = map[models.EmergencyType][]string{
	models.EmergencyCardiacArrest: {"Unresponsive", "Unconscious"},
	models.EmergencyStroke:        {"Confused", "Altered mental status", "Unresponsive"},
	models.EmergencyDiabetic:      {"Confused", "Altered mental status", "Unconscious"},
	models.EmergencySeizure:       {"Post-ictal", "Confused", "Unconscious"},
	models.EmergencyMentalHealth:  {"Agitated", "Confused", "Alert"},
	models.EmergencyAccidentInjuries: {"Confused", "Alert", "Unconscious"},
}

var defaultMentalStatus = []string{"Alert", "Confused", "Drowsy"}

// painRangeByType maps emergency types to pain-level draw ranges.
var painRangeByType = map[models.EmergencyType]vitalRange{
	models.EmergencyCardiacArrest:    {0, 0},
	models.EmergencyHeartAttack:      {7, 10},
	models.EmergencyStroke:           {3, 8},
	models.EmergencySportsInjury:     {5, 9},
	models.EmergencyAccidentInjuries: {6, 10},
	models.EmergencySevereBleeding:   {7, 10},
}

var defaultPainRange = vitalRange{1, 6}

// DeriveCondition assesses the patient from the emergency type and the
// already-drawn vitals.
func DeriveCondition(src *Source, emergencyType models.EmergencyType, vitals models.VitalSigns) models.PatientCondition {
	statuses, ok := mentalStatusByType[emergencyType]
	if !ok {
		statuses = defaultMentalStatus
	}

	painRange, ok := painRangeByType[emergencyType]
	if !ok {
		painRange = defaultPainRange
	}
	pain := src.intBetween(painRange.lo, painRange.hi)

	consciousness := "Conscious"
	if pain == 0 {
		consciousness = "Unconscious"
	}
	breathing := "Normal"
	if vitals.RespiratoryRate >= 25 {
		breathing = "Labored"
	}
	circulation := "Normal"
	if vitals.SystolicBP <= 90 {
		circulation = "Poor"
	}

	return models.PatientCondition{
		MentalStatus:  pick(src.rng, statuses),
		PainLevel:     pain,
		Consciousness: consciousness,
		Breathing:     breathing,
		Circulation:   circulation,
	}
}

// symptomsByType maps emergency types to presenting symptoms.
var symptomsByType = map[models.EmergencyType][]string{
	models.EmergencyCardiacArrest:    {"Unconscious", "No pulse", "Not breathing"},
	models.EmergencyHeartAttack:      {"Chest pain", "Shortness of breath", "Sweating", "Nausea"},
	models.EmergencyStroke:           {"Facial drooping", "Arm weakness", "Speech difficulty", "Confusion"},
	models.EmergencyDiabetic:         {"Confusion", "Sweating", "Shaking", "Dizziness"},
	models.EmergencySeizure:          {"Unconscious", "Convulsions", "Foaming at mouth"},
	models.EmergencyRespiratory:      {"Difficulty breathing", "Wheezing", "Chest tightness"},
	models.EmergencySevereBleeding:   {"Visible bleeding", "Pale skin", "Dizziness", "Weakness"},
	models.EmergencySportsInjury:     {"Pain", "Swelling", "Limited mobility", "Bruising"},
	models.EmergencyAccidentInjuries: {"Pain", "Bleeding", "Neck/back pain", "Confusion"},
	models.EmergencyMentalHealth:     {"Agitation", "Confusion", "Suicidal thoughts", "Paranoia"},
}

var defaultSymptoms = []string{"General distress", "Pain"}

// SymptomsFor returns the presenting symptoms for an emergency type.
func SymptomsFor(emergencyType models.EmergencyType) []string {
	if s, ok := symptomsByType[emergencyType]; ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	out := make([]string, len(defaultSymptoms))
	copy(out, defaultSymptoms)
	return out
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
