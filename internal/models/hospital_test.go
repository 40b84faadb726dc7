package models

import (
	"strings"
	"testing"
	"time"
)

func TestEDStatusForBeds(t *testing.T) {
	tests := []struct {
		name string
		beds int
		want EDStatus
	}{
		{"plenty of beds", 50, EDOpen},
		{"exactly ten beds", 10, EDOpen},
		{"nine beds", 9, EDLimited},
		{"exactly five beds", 5, EDLimited},
		{"four beds", 4, EDCritical},
		{"no beds", 0, EDCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EDStatusForBeds(tt.beds); got != tt.want {
				t.Errorf("EDStatusForBeds(%d) = %v, want %v", tt.beds, got, tt.want)
			}
		})
	}
}

func validHospital() *Hospital {
	return &Hospital{
		ID:              "HOSP-a1b2c3d4",
		Name:            "VCU Medical Center",
		Type:            HospitalTrauma,
		Address:         "1200 E Broad St, Richmond, VA 23219",
		TotalCapacity:   400,
		CurrentCapacity: 320,
		EDStatus:        EDOpen,
		AverageWaitTime: 45,
		CreatedAt:       time.Now(),
	}
}

func TestHospital_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Hospital)
		wantErr string
	}{
		{"valid hospital", func(h *Hospital) {}, ""},
		{"missing id", func(h *Hospital) { h.ID = "" }, "id"},
		{"missing name", func(h *Hospital) { h.Name = "" }, "name"},
		{"invalid type", func(h *Hospital) { h.Type = "CLINIC" }, "hospital type"},
		{"zero capacity", func(h *Hospital) { h.TotalCapacity = 0 }, "total_capacity"},
		{"negative patients", func(h *Hospital) { h.CurrentCapacity = -1 }, "current_capacity"},
		{
			"patients exceed capacity",
			func(h *Hospital) { h.CurrentCapacity = 401 },
			"current_capacity",
		},
		{"negative wait", func(h *Hospital) { h.AverageWaitTime = -1 }, "average_wait_time"},
		{
			"ed status inconsistent with beds",
			func(h *Hospital) { h.CurrentCapacity = 398 },
			"ed_status",
		},
		{
			"critical with no beds",
			func(h *Hospital) { h.CurrentCapacity = 400; h.EDStatus = EDCritical },
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hospital := validHospital()
			tt.mutate(hospital)

			err := hospital.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestHospital_AvailableBeds(t *testing.T) {
	hospital := validHospital()
	if got := hospital.AvailableBeds(); got != 80 {
		t.Errorf("AvailableBeds() = %d, want 80", got)
	}
}

func TestHospital_Accepting(t *testing.T) {
	hospital := validHospital()
	if !hospital.Accepting() {
		t.Error("Accepting() = false for Open ED")
	}

	hospital.CurrentCapacity = 400
	hospital.EDStatus = EDCritical
	if hospital.Accepting() {
		t.Error("Accepting() = true for Critical ED")
	}
}
