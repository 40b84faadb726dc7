package models

import (
	"fmt"
	"time"
)

// HospitalType categorizes a receiving facility. Specialty list and
// capability flags are fixed per type; capacity and wait-time factor are
// randomized once per hospital at creation within the type's range.
type HospitalType string

const (
	HospitalTrauma    HospitalType = "TRAUMA"
	HospitalGeneral   HospitalType = "GENERAL"
	HospitalPediatric HospitalType = "PEDIATRIC"
	HospitalCardiac   HospitalType = "CARDIAC"
)

// HospitalTypes lists all hospital types in catalog order.
var HospitalTypes = []HospitalType{
	HospitalTrauma, HospitalGeneral, HospitalPediatric, HospitalCardiac,
}

// Valid returns true if the hospital type is a valid value.
func (t HospitalType) Valid() bool {
	_, ok := HospitalTypeSpecs[t]
	return ok
}

// HospitalTypeSpec is the static catalog entry for a hospital type.
type HospitalTypeSpec struct {
	Name        string
	Level       string
	Specialties []string

	// Capacity bounds, inclusive; a hospital's total capacity is drawn
	// from this range at creation.
	MinCapacity int
	MaxCapacity int

	// WaitTimeFactor scales the base wait time for this facility class.
	WaitTimeFactor float64

	HelicopterPad bool
	BurnUnit      bool
	StrokeCenter  bool
}

// HospitalTypeSpecs is the fixed lookup table keyed by hospital type.
var HospitalTypeSpecs = map[HospitalType]HospitalTypeSpec{
	HospitalTrauma: {
		Name:           "Trauma Center",
		Level:          "Level I",
		Specialties:    []string{"Trauma Surgery", "Emergency Medicine", "Orthopedics", "Neurosurgery"},
		MinCapacity:    200,
		MaxCapacity:    500,
		WaitTimeFactor: 0.8,
		HelicopterPad:  true,
		BurnUnit:       true,
		StrokeCenter:   true,
	},
	HospitalGeneral: {
		Name:           "General Hospital",
		Level:          "Community",
		Specialties:    []string{"Emergency Medicine", "Internal Medicine", "Cardiology", "General Surgery"},
		MinCapacity:    150,
		MaxCapacity:    300,
		WaitTimeFactor: 1.0,
	},
	HospitalPediatric: {
		Name:           "Children's Hospital",
		Level:          "Specialized",
		Specialties:    []string{"Pediatric Emergency", "Pediatric Surgery", "Neonatology", "Pediatric Cardiology"},
		MinCapacity:    100,
		MaxCapacity:    250,
		WaitTimeFactor: 0.9,
	},
	HospitalCardiac: {
		Name:           "Cardiac Center",
		Level:          "Specialized",
		Specialties:    []string{"Cardiology", "Cardiac Surgery", "Emergency Medicine", "Interventional Cardiology"},
		MinCapacity:    120,
		MaxCapacity:    280,
		WaitTimeFactor: 0.7,
		HelicopterPad:  true,
		StrokeCenter:   true,
	},
}

// EDStatus is the emergency department capacity tier.
type EDStatus string

const (
	EDOpen     EDStatus = "Open"
	EDLimited  EDStatus = "Limited"
	EDCritical EDStatus = "Critical"
)

// EDStatusForBeds derives the ED status from available bed count.
func EDStatusForBeds(beds int) EDStatus {
	switch {
	case beds >= 10:
		return EDOpen
	case beds >= 5:
		return EDLimited
	default:
		return EDCritical
	}
}

// Hospital represents a simulated receiving facility.
type Hospital struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type HospitalType `json:"type"`

	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Phone       string      `json:"phone"`

	Specialties []string `json:"specialties"`

	TotalCapacity   int      `json:"total_capacity"`
	CurrentCapacity int      `json:"current_capacity"`
	EDStatus        EDStatus `json:"ed_status"`
	AverageWaitTime int      `json:"average_wait_time"` // minutes

	HelicopterPad bool `json:"helicopter_pad"`
	BurnUnit      bool `json:"burn_unit"`
	StrokeCenter  bool `json:"stroke_center"`

	CreatedAt time.Time `json:"created_at"`
}

// Spec returns the static catalog entry for this hospital's type.
func (h *Hospital) Spec() HospitalTypeSpec {
	return HospitalTypeSpecs[h.Type]
}

// AvailableBeds is the derived free bed count.
func (h *Hospital) AvailableBeds() int {
	return h.TotalCapacity - h.CurrentCapacity
}

// Accepting reports whether the ED is taking new patients.
func (h *Hospital) Accepting() bool {
	return h.EDStatus != EDCritical
}

// Validate checks if the hospital data is valid.
func (h *Hospital) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("id is required")
	}
	if h.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !h.Type.Valid() {
		return fmt.Errorf("invalid hospital type: %s", h.Type)
	}
	if h.TotalCapacity < 1 {
		return fmt.Errorf("total_capacity must be positive, got %d", h.TotalCapacity)
	}
	if h.CurrentCapacity < 0 || h.CurrentCapacity > h.TotalCapacity {
		return fmt.Errorf("current_capacity %d outside [0, %d]",
			h.CurrentCapacity, h.TotalCapacity)
	}
	if h.AverageWaitTime < 0 {
		return fmt.Errorf("average_wait_time must be non-negative")
	}
	if h.EDStatus != EDStatusForBeds(h.AvailableBeds()) {
		return fmt.Errorf("ed_status %s inconsistent with %d available beds",
			h.EDStatus, h.AvailableBeds())
	}
	return nil
}
