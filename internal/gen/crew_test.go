package gen

import (
	"strings"
	"testing"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

func TestCrewGenerator_Generate(t *testing.T) {
	g := NewCrewGenerator(NewSource(1), genAnchor)

	member, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if err := member.Validate(); err != nil {
		t.Errorf("generated crew member failed validation: %v", err)
	}
	if !util.HasPrefix(member.ID, util.PrefixCrew) {
		t.Errorf("ID = %q, want %s prefix", member.ID, util.PrefixCrew)
	}
	if !strings.Contains(member.Email, "@") {
		t.Errorf("Email = %q, want an address", member.Email)
	}
	if member.HireDate.After(genAnchor) {
		t.Errorf("HireDate = %v is in the future", member.HireDate)
	}
}

func TestCrewGenerator_Batch(t *testing.T) {
	g := NewCrewGenerator(NewSource(5), genAnchor)

	members, err := g.Batch(60)
	if err != nil {
		t.Fatalf("Batch(60) error = %v", err)
	}
	if len(members) != 60 {
		t.Fatalf("Batch(60) produced %d members", len(members))
	}

	for _, m := range members {
		if m.Age < 18 || m.Age > 70 {
			t.Errorf("%s: age = %d, want [18, 70]", m.ID, m.Age)
		}
		if m.YearsExperience > m.Age-18 {
			t.Errorf("%s: %d years experience exceeds age %d minus 18", m.ID, m.YearsExperience, m.Age)
		}
		if m.YearsExperience < 1 {
			t.Errorf("%s: %d years experience, want at least 1", m.ID, m.YearsExperience)
		}
		if tenure := util.CalculateAge(m.HireDate, genAnchor); m.YearsExperience > tenure {
			t.Errorf("%s: %d years experience exceeds %d years since hire", m.ID, m.YearsExperience, tenure)
		}
		if m.IsActive && m.CurrentShift == nil {
			t.Errorf("%s: active member has no shift", m.ID)
		}
		if !m.IsActive && m.CurrentShift != nil {
			t.Errorf("%s: inactive member assigned shift %q", m.ID, *m.CurrentShift)
		}
	}
}

func TestCrewGenerator_SeedReproducibility(t *testing.T) {
	first, err := NewCrewGenerator(NewSource(42), genAnchor).Batch(15)
	if err != nil {
		t.Fatalf("first Batch error = %v", err)
	}
	second, err := NewCrewGenerator(NewSource(42), genAnchor).Batch(15)
	if err != nil {
		t.Fatalf("second Batch error = %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Errorf("member %d: %s/%s vs %s/%s", i, first[i].ID, first[i].Name, second[i].ID, second[i].Name)
		}
	}
}

func TestCrewGenerator_Stats(t *testing.T) {
	g := NewCrewGenerator(NewSource(9), genAnchor)
	if _, err := g.Batch(40); err != nil {
		t.Fatalf("Batch(40) error = %v", err)
	}

	stats := g.Stats()
	if stats.Total != 40 {
		t.Errorf("Total = %d, want 40", stats.Total)
	}
	if stats.Active < 0 || stats.Active > 40 {
		t.Errorf("Active = %d, want [0, 40]", stats.Active)
	}
	if stats.AverageExperience < 1 || stats.AverageExperience > 25 {
		t.Errorf("AverageExperience = %v, want [1, 25]", stats.AverageExperience)
	}

	counted := 0
	for cert, n := range stats.ByCertification {
		valid := false
		for _, c := range models.Certifications {
			if c == cert {
				valid = true
			}
		}
		if !valid {
			t.Errorf("ByCertification contains unknown certification %q", cert)
		}
		counted += n
	}
	if counted != 40 {
		t.Errorf("ByCertification counts sum to %d, want 40", counted)
	}
}
