package repository

import (
	"testing"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/testutil"
)

func TestCrewRepository_CreateAndGet(t *testing.T) {
	db, ctx := newTestRepoDB(t)
	repo := NewCrewRepository(db)

	unitID := "UNIT-1"
	member := testutil.FixtureCrewMember(func(m *models.CrewMember) {
		m.CreatedAt = dbTime(time.Now())
		m.AssignedUnitID = &unitID
	})

	if err := repo.Create(ctx, nil, member); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Name != member.Name || got.Age != member.Age {
		t.Errorf("identity = %s/%d, want %s/%d", got.Name, got.Age, member.Name, member.Age)
	}
	if got.Certification != member.Certification || got.Role != member.Role {
		t.Errorf("qualifications = %s/%s, want %s/%s",
			got.Certification, got.Role, member.Certification, member.Role)
	}
	if got.YearsExperience != member.YearsExperience {
		t.Errorf("YearsExperience = %d, want %d", got.YearsExperience, member.YearsExperience)
	}

	// Hire dates persist at day precision.
	if got.HireDate.Format(time.DateOnly) != member.HireDate.Format(time.DateOnly) {
		t.Errorf("HireDate = %v, want %v", got.HireDate, member.HireDate)
	}
	if got.CurrentShift == nil || *got.CurrentShift != *member.CurrentShift {
		t.Errorf("CurrentShift = %v, want %v", got.CurrentShift, member.CurrentShift)
	}
	if got.AssignedUnitID == nil || *got.AssignedUnitID != unitID {
		t.Errorf("AssignedUnitID = %v, want %s", got.AssignedUnitID, unitID)
	}
}

func TestCrewRepository_NullableFields(t *testing.T) {
	db, ctx := newTestRepoDB(t)
	repo := NewCrewRepository(db)

	member := testutil.FixtureCrewMember(func(m *models.CrewMember) {
		m.IsActive = false
		m.CurrentShift = nil
		m.AssignedUnitID = nil
	})

	if err := repo.Create(ctx, nil, member); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.IsActive {
		t.Error("IsActive = true, want false")
	}
	if got.CurrentShift != nil || got.AssignedUnitID != nil {
		t.Errorf("nullable fields = %v/%v, want nil/nil", got.CurrentShift, got.AssignedUnitID)
	}
}

func TestCrewRepository_CreateInvalid(t *testing.T) {
	db, ctx := newTestRepoDB(t)
	repo := NewCrewRepository(db)

	member := testutil.FixtureCrewMember(func(m *models.CrewMember) {
		m.YearsExperience = m.Age // exceeds age minus 18
	})

	if err := repo.Create(ctx, nil, member); err == nil {
		t.Error("Create() accepted an invalid crew member")
	}
}

func TestCrewRepository_ListOrder(t *testing.T) {
	db, ctx := newTestRepoDB(t)
	repo := NewCrewRepository(db)

	for _, name := range []string{"Carol Diaz", "Alan Brown", "Beth Adams"} {
		n := name
		member := testutil.FixtureCrewMember(func(m *models.CrewMember) { m.Name = n })
		if err := repo.Create(ctx, nil, member); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	members, err := repo.List(ctx, models.DefaultPagination())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("List() = %d members, want 3", len(members))
	}
	want := []string{"Alan Brown", "Beth Adams", "Carol Diaz"}
	for i, m := range members {
		if m.Name != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, m.Name, want[i])
		}
	}
}
