package sim

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/emsim/emsim/internal/gen"
	"github.com/emsim/emsim/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCounts() Counts {
	return Counts{
		Incidents:        5,
		Crew:             12,
		Units:            4,
		Hospitals:        len(gen.HospitalSites),
		NotesPerIncident: 2,
	}
}

func TestCoordinator_GenerateWorld(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(42))

	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	if len(world.Incidents) != 5 {
		t.Errorf("incidents = %d, want 5", len(world.Incidents))
	}
	if len(world.Crew) != 12 {
		t.Errorf("crew = %d, want 12", len(world.Crew))
	}
	if len(world.Units) != 4 {
		t.Errorf("units = %d, want 4", len(world.Units))
	}
	if len(world.Hospitals) != len(gen.HospitalSites) {
		t.Errorf("hospitals = %d, want %d", len(world.Hospitals), len(gen.HospitalSites))
	}
	if len(world.Notes) != 10 {
		t.Errorf("notes = %d, want 5 incidents x 2 notes", len(world.Notes))
	}

	for _, incident := range world.Incidents {
		if err := incident.Validate(); err != nil {
			t.Errorf("%s: invalid after assignment: %v", incident.ID, err)
		}
	}
	for _, unit := range world.Units {
		if err := unit.Validate(); err != nil {
			t.Errorf("%s: invalid after assignment: %v", unit.ID, err)
		}
	}
}

func TestCoordinator_CrewInAtMostOneUnit(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(7))

	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	assignedTo := make(map[string]string)
	for _, unit := range world.Units {
		for _, crewID := range unit.AssignedCrew {
			if prev, ok := assignedTo[crewID]; ok {
				t.Errorf("crew %s assigned to both %s and %s", crewID, prev, unit.ID)
			}
			assignedTo[crewID] = unit.ID
		}
	}

	for _, member := range world.Crew {
		unitID, rostered := assignedTo[member.ID]
		switch {
		case rostered && (member.AssignedUnitID == nil || *member.AssignedUnitID != unitID):
			t.Errorf("crew %s rostered on %s but back-reference = %v", member.ID, unitID, member.AssignedUnitID)
		case !rostered && member.AssignedUnitID != nil:
			t.Errorf("crew %s references unit %s but appears on no roster", member.ID, *member.AssignedUnitID)
		}
	}
}

func TestCoordinator_AssignmentRecords(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(11))

	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	assignments := c.Assignments()
	if len(assignments) != len(world.Incidents) {
		t.Fatalf("assignments = %d, want one per incident (%d)", len(assignments), len(world.Incidents))
	}

	for _, incident := range world.Incidents {
		a, ok := assignments[incident.ID]
		if !ok {
			t.Errorf("%s: no assignment record", incident.ID)
			continue
		}
		if (a.UnitID == nil) != (incident.AssignedUnitID == nil) {
			t.Errorf("%s: assignment unit %v disagrees with incident %v", incident.ID, a.UnitID, incident.AssignedUnitID)
		}
		if a.UnitID != nil && *a.UnitID != *incident.AssignedUnitID {
			t.Errorf("%s: assignment unit %s, incident says %s", incident.ID, *a.UnitID, *incident.AssignedUnitID)
		}
		if (a.HospitalID == nil) != (incident.DestinationHospital == nil) {
			t.Errorf("%s: assignment hospital disagrees with incident", incident.ID)
		}
	}
}

func TestCoordinator_DispatchedUnitsConsistent(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(13))

	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	unitsByID := make(map[string]*models.Unit)
	for _, unit := range world.Units {
		unitsByID[unit.ID] = unit
	}

	for _, incident := range world.Incidents {
		if incident.AssignedUnitID == nil {
			continue
		}
		unit, ok := unitsByID[*incident.AssignedUnitID]
		if !ok {
			t.Errorf("%s: assigned unit %s does not exist", incident.ID, *incident.AssignedUnitID)
			continue
		}
		if !unit.Status.OnIncident() {
			t.Errorf("%s: dispatched unit %s in status %s", incident.ID, unit.ID, unit.Status)
		}
		if unit.CurrentIncidentID == nil || *unit.CurrentIncidentID != incident.ID {
			t.Errorf("%s: unit %s bound to %v instead", incident.ID, unit.ID, unit.CurrentIncidentID)
		}
	}
}

func TestCoordinator_EmptyWorld(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(1))

	world, err := c.GenerateWorld(Counts{})
	if err != nil {
		t.Fatalf("GenerateWorld(zero counts) error = %v", err)
	}

	if len(world.Incidents)+len(world.Crew)+len(world.Units)+len(world.Hospitals)+len(world.Notes) != 0 {
		t.Errorf("zero counts produced entities: %+v", world)
	}
	if len(c.Assignments()) != 0 {
		t.Errorf("zero counts produced %d assignments", len(c.Assignments()))
	}
}

func TestCoordinator_NoUnitsAvailable(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(3))

	counts := testCounts()
	counts.Units = 0
	world, err := c.GenerateWorld(counts)
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	for _, incident := range world.Incidents {
		if incident.AssignedUnitID != nil {
			t.Errorf("%s: assigned unit %s with an empty fleet", incident.ID, *incident.AssignedUnitID)
		}
		if incident.DestinationHospital == nil {
			t.Errorf("%s: no destination hospital despite hospitals existing", incident.ID)
		}
		if a := c.Assignments()[incident.ID]; a == nil {
			t.Errorf("%s: missing assignment record", incident.ID)
		} else if a.UnitID != nil || len(a.CrewIDs) != 0 {
			t.Errorf("%s: assignment carries unit links with an empty fleet", incident.ID)
		}
	}
}

func TestCoordinator_AllUnitsOutOfService(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(7))

	counts := testCounts()
	counts.Incidents = 0
	world, err := c.GenerateWorld(counts)
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}
	if len(world.Units) == 0 {
		t.Fatal("expected a non-empty fleet")
	}
	for _, unit := range world.Units {
		unit.Status = models.UnitOutOfService
		unit.CurrentIncidentID = nil
		unit.Destination = nil
		unit.EstimatedArrival = nil
	}

	world, err = c.GenerateWorld(Counts{Incidents: 6, NotesPerIncident: 2})
	if err != nil {
		t.Fatalf("second GenerateWorld() error = %v", err)
	}

	for _, incident := range world.Incidents {
		if incident.AssignedUnitID != nil {
			t.Errorf("%s: assigned unit %s with the whole fleet out of service",
				incident.ID, *incident.AssignedUnitID)
		}
		if incident.DestinationHospital == nil {
			t.Errorf("%s: no destination hospital despite hospitals existing", incident.ID)
		}
		if a := c.Assignments()[incident.ID]; a == nil {
			t.Errorf("%s: missing assignment record", incident.ID)
		} else if a.UnitID != nil || len(a.CrewIDs) != 0 {
			t.Errorf("%s: assignment carries unit links with the fleet out of service", incident.ID)
		}
	}
	for _, unit := range world.Units {
		if unit.Status != models.UnitOutOfService {
			t.Errorf("unit %s left out-of-service status: %s", unit.ID, unit.Status)
		}
	}
}

func TestCoordinator_TransportNotesNameSelectedHospital(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(11))

	counts := testCounts()
	counts.Incidents = 0
	counts.NotesPerIncident = 0
	world, err := c.GenerateWorld(counts)
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	var cardiac *models.Hospital
	for _, h := range world.Hospitals {
		if h.Type == models.HospitalCardiac {
			cardiac = h
			break
		}
	}
	if cardiac == nil {
		t.Fatal("full catalog generated no cardiac center")
	}

	for i := 0; i < 10; i++ {
		incident, err := c.incidents.Generate()
		if err != nil {
			t.Fatalf("incident %d: Generate() error = %v", i, err)
		}
		incident.EmergencyType = models.EmergencyCardiacArrest
		if err := c.notesForIncident(incident, 8); err != nil {
			t.Fatalf("incident %d: notesForIncident() error = %v", i, err)
		}
	}

	var transports int
	for _, note := range c.notes.Generated() {
		if note.Type != models.NoteTransport && note.Type != models.NoteHandoff {
			continue
		}
		transports++
		if !strings.Contains(note.Content, cardiac.Name) {
			t.Errorf("%s note %s does not name %s: %q",
				note.Type, note.ID, cardiac.Name, note.Content)
		}
	}
	if transports == 0 {
		t.Fatal("no transport or handoff notes generated")
	}
}

func TestCoordinator_SeedReproducibility(t *testing.T) {
	first, err := NewCoordinator(testLogger(), gen.NewSource(42)).GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("first GenerateWorld() error = %v", err)
	}
	second, err := NewCoordinator(testLogger(), gen.NewSource(42)).GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("second GenerateWorld() error = %v", err)
	}

	for i := range first.Incidents {
		a, b := first.Incidents[i], second.Incidents[i]
		if a.ID != b.ID || a.EmergencyType != b.EmergencyType || a.Priority != b.Priority {
			t.Errorf("incident %d diverged: %s/%s/%d vs %s/%s/%d",
				i, a.ID, a.EmergencyType, a.Priority, b.ID, b.EmergencyType, b.Priority)
		}
		if (a.AssignedUnitID == nil) != (b.AssignedUnitID == nil) {
			t.Errorf("incident %d: unit assignment diverged", i)
		}
	}
	for i := range first.Notes {
		if first.Notes[i].Type != second.Notes[i].Type {
			t.Errorf("note %d: type %s vs %s", i, first.Notes[i].Type, second.Notes[i].Type)
		}
	}
}

func TestCoordinator_SelectHospital(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(5))
	if _, err := c.GenerateWorld(Counts{Hospitals: len(gen.HospitalSites)}); err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	tests := []struct {
		name     string
		incident *models.Incident
		wantType models.HospitalType
	}{
		{
			"cardiac emergency routes to cardiac center",
			&models.Incident{EmergencyType: models.EmergencyCardiacArrest, Caller: models.Caller{Age: 50}},
			models.HospitalCardiac,
		},
		{
			"heart attack routes to cardiac center",
			&models.Incident{EmergencyType: models.EmergencyHeartAttack, Caller: models.Caller{Age: 61}},
			models.HospitalCardiac,
		},
		{
			"pediatric patient routes to children's hospital",
			&models.Incident{EmergencyType: models.EmergencySeizure, Caller: models.Caller{Age: 9}},
			models.HospitalPediatric,
		},
		{
			"injury accident routes to trauma center",
			&models.Incident{EmergencyType: models.EmergencyAccidentInjuries, Caller: models.Caller{Age: 30}},
			models.HospitalTrauma,
		},
		{
			"routine emergency routes to a general hospital",
			&models.Incident{EmergencyType: models.EmergencyTransport, Caller: models.Caller{Age: 40}},
			models.HospitalGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := c.SelectHospital(tt.incident)
			if h == nil {
				t.Fatal("SelectHospital() = nil with hospitals generated")
			}
			if h.Type != tt.wantType {
				t.Errorf("SelectHospital() type = %v, want %v", h.Type, tt.wantType)
			}
		})
	}

	t.Run("no hospitals yields nil", func(t *testing.T) {
		empty := NewCoordinator(testLogger(), gen.NewSource(5))
		incident := &models.Incident{EmergencyType: models.EmergencyFire, Caller: models.Caller{Age: 40}}
		if h := empty.SelectHospital(incident); h != nil {
			t.Errorf("SelectHospital() = %v, want nil with no hospitals", h.Name)
		}
	})
}

func TestCoordinator_ClosestHospital(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(5))
	if _, err := c.GenerateWorld(Counts{Hospitals: len(gen.HospitalSites)}); err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	target := gen.HospitalSites[2]
	closest := c.ClosestHospital(target.Coordinates)
	if closest == nil {
		t.Fatal("ClosestHospital() = nil with hospitals generated")
	}
	if closest.Name != target.Name {
		t.Errorf("ClosestHospital() = %q, want %q at zero distance", closest.Name, target.Name)
	}

	empty := NewCoordinator(testLogger(), gen.NewSource(5))
	if h := empty.ClosestHospital(target.Coordinates); h != nil {
		t.Errorf("ClosestHospital() = %v with no hospitals, want nil", h.Name)
	}
}
