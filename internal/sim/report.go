package sim

import (
	"time"

	"github.com/emsim/emsim/internal/gen"
	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// Statistics is a read-only aggregate view over the generated world.
// Computing it never mutates state; repeated calls over an unchanged
// world return equal values.
type Statistics struct {
	StartedAt time.Time
	Incidents gen.IncidentStats
	Crew      gen.CrewStats
	Units     gen.UnitStats
	Hospitals gen.HospitalStats
	Notes     gen.NoteStats

	Relationships RelationshipStats
}

// RelationshipStats counts the cross-entity links in the world.
type RelationshipStats struct {
	IncidentsWithUnits     int
	IncidentsWithHospitals int
	UnitsWithCrew          int
	ActiveIncidents        int
}

// Statistics computes aggregates for every entity type plus
// relationship counts.
func (c *Coordinator) Statistics() Statistics {
	stats := Statistics{
		StartedAt: c.startedAt,
		Incidents: c.incidents.Stats(),
		Crew:      c.crew.Stats(),
		Units:     c.units.Stats(),
		Hospitals: c.hospitals.Stats(),
		Notes:     c.notes.Stats(),
	}

	for _, incident := range c.incidents.Generated() {
		if incident.IsAssigned() {
			stats.Relationships.IncidentsWithUnits++
		}
		if incident.DestinationHospital != nil {
			stats.Relationships.IncidentsWithHospitals++
		}
		if incident.Status == models.IncidentDispatched {
			stats.Relationships.ActiveIncidents++
		}
	}
	for _, unit := range c.units.Generated() {
		if len(unit.AssignedCrew) > 0 {
			stats.Relationships.UnitsWithCrew++
		}
	}
	return stats
}

// Timeline is the joined view of one incident and everything linked to
// it. Any of the reference fields may be nil or empty when the incident
// was never fully assigned.
type Timeline struct {
	Incident *models.Incident
	Unit     *models.Unit
	Crew     []*models.CrewMember
	Hospital *models.Hospital
	Notes    []*models.ProviderNote
}

// IncidentTimeline joins an incident with its unit, crew, destination
// hospital, and provider notes. Returns nil for an unknown or malformed
// incident ID; missing links are left nil rather than treated as errors.
func (c *Coordinator) IncidentTimeline(incidentID string) *Timeline {
	if !util.HasPrefix(incidentID, util.PrefixIncident) {
		return nil
	}

	var incident *models.Incident
	for _, i := range c.incidents.Generated() {
		if i.ID == incidentID {
			incident = i
			break
		}
	}
	if incident == nil {
		return nil
	}

	timeline := &Timeline{Incident: incident}

	if incident.AssignedUnitID != nil {
		for _, unit := range c.units.Generated() {
			if unit.ID == *incident.AssignedUnitID {
				timeline.Unit = unit
				break
			}
		}
	}
	if timeline.Unit != nil {
		for _, crewID := range timeline.Unit.AssignedCrew {
			for _, member := range c.crew.Generated() {
				if member.ID == crewID {
					timeline.Crew = append(timeline.Crew, member)
					break
				}
			}
		}
	}
	if incident.DestinationHospital != nil {
		for _, hospital := range c.hospitals.Generated() {
			if hospital.ID == *incident.DestinationHospital {
				timeline.Hospital = hospital
				break
			}
		}
	}
	for _, note := range c.notes.Generated() {
		if note.IncidentID == incidentID {
			timeline.Notes = append(timeline.Notes, note)
		}
	}
	return timeline
}

// ExportMetadata describes one export run.
type ExportMetadata struct {
	SimulationID  string    `json:"simulation_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	TotalEntities int       `json:"total_entities"`
}

// Export is the full world as plain keyed records, suitable for
// persistence or serialization without importing the model types.
type Export struct {
	Metadata ExportMetadata              `json:"metadata"`
	Data     map[string][]map[string]any `json:"data"`
}

// Export emits metadata plus every entity as a map[string]any record.
func (c *Coordinator) Export() *Export {
	world := c.World()

	data := map[string][]map[string]any{
		"incidents":      make([]map[string]any, 0, len(world.Incidents)),
		"crew_members":   make([]map[string]any, 0, len(world.Crew)),
		"units":          make([]map[string]any, 0, len(world.Units)),
		"hospitals":      make([]map[string]any, 0, len(world.Hospitals)),
		"provider_notes": make([]map[string]any, 0, len(world.Notes)),
	}
	for _, i := range world.Incidents {
		data["incidents"] = append(data["incidents"], incidentRecord(i))
	}
	for _, m := range world.Crew {
		data["crew_members"] = append(data["crew_members"], crewRecord(m))
	}
	for _, u := range world.Units {
		data["units"] = append(data["units"], unitRecord(u))
	}
	for _, h := range world.Hospitals {
		data["hospitals"] = append(data["hospitals"], hospitalRecord(h))
	}
	for _, n := range world.Notes {
		data["provider_notes"] = append(data["provider_notes"], noteRecord(n))
	}

	total := len(world.Incidents) + len(world.Crew) + len(world.Units) +
		len(world.Hospitals) + len(world.Notes)

	return &Export{
		Metadata: ExportMetadata{
			SimulationID:  util.NewRunID(),
			GeneratedAt:   time.Now(),
			TotalEntities: total,
		},
		Data: data,
	}
}

func incidentRecord(i *models.Incident) map[string]any {
	return map[string]any{
		"id":                      i.ID,
		"created_at":              util.FormatDateTime(i.CreatedAt),
		"emergency_type":          string(i.EmergencyType),
		"priority":                i.Priority,
		"status":                  string(i.Status),
		"caller_name":             i.Caller.Name,
		"caller_age":              i.Caller.Age,
		"caller_sex":              string(i.Caller.Sex),
		"caller_phone":            i.Caller.Phone,
		"medical_history":         i.Caller.MedicalHistory,
		"address":                 i.Location.Address,
		"latitude":                i.Location.Coordinates.Latitude,
		"longitude":               i.Location.Coordinates.Longitude,
		"operator_notes":          i.OperatorNotes,
		"symptoms":                i.Symptoms,
		"systolic_bp":             i.Vitals.SystolicBP,
		"diastolic_bp":            i.Vitals.DiastolicBP,
		"heart_rate":              i.Vitals.HeartRate,
		"respiratory_rate":        i.Vitals.RespiratoryRate,
		"temperature":             i.Vitals.Temperature,
		"oxygen_saturation":       i.Vitals.OxygenSaturation,
		"mental_status":           i.Condition.MentalStatus,
		"pain_level":              i.Condition.PainLevel,
		"assigned_unit_id":        i.AssignedUnitID,
		"destination_hospital_id": i.DestinationHospital,
	}
}

func crewRecord(m *models.CrewMember) map[string]any {
	return map[string]any{
		"id":               m.ID,
		"name":             m.Name,
		"age":              m.Age,
		"sex":              string(m.Sex),
		"certification":    string(m.Certification),
		"role":             string(m.Role),
		"department":       m.Department,
		"years_experience": m.YearsExperience,
		"hire_date":        util.FormatDate(m.HireDate),
		"phone":            m.Phone,
		"email":            m.Email,
		"is_active":        m.IsActive,
		"current_shift":    m.CurrentShift,
		"assigned_unit_id": m.AssignedUnitID,
		"created_at":       util.FormatDateTime(m.CreatedAt),
	}
}

func unitRecord(u *models.Unit) map[string]any {
	return map[string]any{
		"id":                  u.ID,
		"number":              u.Number,
		"type":                string(u.Type),
		"vehicle_year":        u.VehicleYear,
		"mileage":             u.Mileage,
		"station_name":        u.Station.Name,
		"station_address":     u.Station.Address,
		"latitude":            u.CurrentLocation.Latitude,
		"longitude":           u.CurrentLocation.Longitude,
		"status":              string(u.Status),
		"is_available":        u.IsAvailable(),
		"assigned_crew":       u.AssignedCrew,
		"current_incident_id": u.CurrentIncidentID,
		"destination":         u.Destination,
		"estimated_arrival":   u.EstimatedArrival,
		"last_incident_time":  u.LastIncidentTime,
		"created_at":          util.FormatDateTime(u.CreatedAt),
	}
}

func hospitalRecord(h *models.Hospital) map[string]any {
	return map[string]any{
		"id":                h.ID,
		"name":              h.Name,
		"type":              string(h.Type),
		"address":           h.Address,
		"latitude":          h.Coordinates.Latitude,
		"longitude":         h.Coordinates.Longitude,
		"phone":             h.Phone,
		"specialties":       h.Specialties,
		"total_capacity":    h.TotalCapacity,
		"current_capacity":  h.CurrentCapacity,
		"available_beds":    h.AvailableBeds(),
		"ed_status":         string(h.EDStatus),
		"average_wait_time": h.AverageWaitTime,
		"helicopter_pad":    h.HelicopterPad,
		"burn_unit":         h.BurnUnit,
		"stroke_center":     h.StrokeCenter,
		"created_at":        util.FormatDateTime(h.CreatedAt),
	}
}

func noteRecord(n *models.ProviderNote) map[string]any {
	return map[string]any{
		"id":                n.ID,
		"incident_id":       n.IncidentID,
		"crew_id":           n.CrewID,
		"type":              string(n.Type),
		"category":          n.Type.DisplayName(),
		"content":           n.Content,
		"priority":          string(n.Priority),
		"is_urgent":         n.IsUrgent(),
		"requires_followup": n.RequiresFollowup,
		"created_at":        util.FormatDateTime(n.CreatedAt),
	}
}
