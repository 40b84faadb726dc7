package sim

import (
	"reflect"
	"testing"
	"time"

	"github.com/emsim/emsim/internal/gen"
	"github.com/emsim/emsim/internal/util"
)

func TestCoordinator_Statistics(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(42))
	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	stats := c.Statistics()
	if stats.Incidents.Total != len(world.Incidents) {
		t.Errorf("Incidents.Total = %d, want %d", stats.Incidents.Total, len(world.Incidents))
	}
	if stats.Notes.Total != len(world.Notes) {
		t.Errorf("Notes.Total = %d, want %d", stats.Notes.Total, len(world.Notes))
	}
	if stats.Relationships.ActiveIncidents != len(world.Incidents) {
		t.Errorf("ActiveIncidents = %d, want %d dispatched incidents",
			stats.Relationships.ActiveIncidents, len(world.Incidents))
	}
	if stats.Relationships.IncidentsWithUnits > len(world.Incidents) {
		t.Errorf("IncidentsWithUnits = %d exceeds incident count", stats.Relationships.IncidentsWithUnits)
	}

	withHospital := 0
	for _, incident := range world.Incidents {
		if incident.DestinationHospital != nil {
			withHospital++
		}
	}
	if stats.Relationships.IncidentsWithHospitals != withHospital {
		t.Errorf("IncidentsWithHospitals = %d, want %d", stats.Relationships.IncidentsWithHospitals, withHospital)
	}
}

func TestCoordinator_StatisticsReadOnly(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(9))
	if _, err := c.GenerateWorld(testCounts()); err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	first := c.Statistics()
	second := c.Statistics()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Statistics() calls differ:\n%+v\n%+v", first, second)
	}
}

func TestCoordinator_IncidentTimeline(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(21))
	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	incident := world.Incidents[0]
	timeline := c.IncidentTimeline(incident.ID)
	if timeline == nil {
		t.Fatalf("IncidentTimeline(%s) = nil", incident.ID)
	}
	if timeline.Incident != incident {
		t.Error("timeline carries a different incident")
	}
	if len(timeline.Notes) != 2 {
		t.Errorf("timeline notes = %d, want 2", len(timeline.Notes))
	}
	for _, note := range timeline.Notes {
		if note.IncidentID != incident.ID {
			t.Errorf("timeline includes note for %s", note.IncidentID)
		}
	}

	if incident.AssignedUnitID != nil {
		if timeline.Unit == nil || timeline.Unit.ID != *incident.AssignedUnitID {
			t.Errorf("timeline unit = %v, want %s", timeline.Unit, *incident.AssignedUnitID)
		}
		if len(timeline.Crew) != len(timeline.Unit.AssignedCrew) {
			t.Errorf("timeline crew = %d, roster has %d", len(timeline.Crew), len(timeline.Unit.AssignedCrew))
		}
	} else if timeline.Unit != nil {
		t.Error("timeline carries a unit for an unassigned incident")
	}

	if incident.DestinationHospital != nil {
		if timeline.Hospital == nil || timeline.Hospital.ID != *incident.DestinationHospital {
			t.Errorf("timeline hospital = %v, want %s", timeline.Hospital, *incident.DestinationHospital)
		}
	}
}

func TestCoordinator_IncidentTimeline_Unknown(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(21))
	if _, err := c.GenerateWorld(testCounts()); err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	if timeline := c.IncidentTimeline("INC-does-not-exist"); timeline != nil {
		t.Errorf("IncidentTimeline(unknown) = %+v, want nil", timeline)
	}
	if timeline := c.IncidentTimeline("not an id"); timeline != nil {
		t.Errorf("IncidentTimeline(malformed) = %+v, want nil", timeline)
	}
	if timeline := c.IncidentTimeline(""); timeline != nil {
		t.Errorf("IncidentTimeline(empty) = %+v, want nil", timeline)
	}
}

func TestCoordinator_Export(t *testing.T) {
	c := NewCoordinator(testLogger(), gen.NewSource(33))
	world, err := c.GenerateWorld(testCounts())
	if err != nil {
		t.Fatalf("GenerateWorld() error = %v", err)
	}

	export := c.Export()
	if export.Metadata.SimulationID == "" {
		t.Error("export missing simulation ID")
	}

	wantTotal := len(world.Incidents) + len(world.Crew) + len(world.Units) +
		len(world.Hospitals) + len(world.Notes)
	if export.Metadata.TotalEntities != wantTotal {
		t.Errorf("TotalEntities = %d, want %d", export.Metadata.TotalEntities, wantTotal)
	}

	counts := map[string]int{
		"incidents":      len(world.Incidents),
		"crew_members":   len(world.Crew),
		"units":          len(world.Units),
		"hospitals":      len(world.Hospitals),
		"provider_notes": len(world.Notes),
	}
	for key, want := range counts {
		if got := len(export.Data[key]); got != want {
			t.Errorf("Data[%q] = %d records, want %d", key, got, want)
		}
	}

	record := export.Data["incidents"][0]
	for _, field := range []string{"id", "emergency_type", "priority", "caller_name", "latitude"} {
		if _, ok := record[field]; !ok {
			t.Errorf("incident record missing field %q", field)
		}
	}
	if ts, ok := record["created_at"].(string); !ok {
		t.Errorf("incident created_at = %T, want a formatted string", record["created_at"])
	} else if _, err := time.Parse(util.DateTimeFormat, ts); err != nil {
		t.Errorf("incident created_at %q does not parse: %v", ts, err)
	}
	if hd, ok := export.Data["crew_members"][0]["hire_date"].(string); !ok {
		t.Error("crew hire_date is not a formatted string")
	} else if _, err := util.ParseDate(hd); err != nil {
		t.Errorf("crew hire_date %q does not parse: %v", hd, err)
	}
}
