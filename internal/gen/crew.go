package gen

import (
	"strings"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// CrewGenerator produces synthetic EMS personnel.
type CrewGenerator struct {
	src       *Source
	now       time.Time
	generated []*models.CrewMember
}

// NewCrewGenerator creates a crew generator.
func NewCrewGenerator(src *Source, now time.Time) *CrewGenerator {
	return &CrewGenerator{src: src, now: now}
}

// Generate produces one valid crew member and appends it to the
// generator's collection. Single regeneration retry on validation
// failure, then ValidationError.
func (g *CrewGenerator) Generate() (*models.CrewMember, error) {
	member := g.draw()
	if err := member.Validate(); err != nil {
		member = g.draw()
		if err := member.Validate(); err != nil {
			return nil, &ValidationError{Kind: "crew member", Err: err}
		}
	}

	g.generated = append(g.generated, member)
	return member, nil
}

// Batch generates count crew members in order.
func (g *CrewGenerator) Batch(count int) ([]*models.CrewMember, error) {
	members := make([]*models.CrewMember, 0, count)
	for i := 0; i < count; i++ {
		member, err := g.Generate()
		if err != nil {
			return members, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (g *CrewGenerator) draw() *models.CrewMember {
	src := g.src

	// 25 minimum so every member can carry some experience.
	age := src.intBetween(25, 65)
	sex := src.sex()
	name := src.fullName(sex)

	maxExperience := age - 18
	if maxExperience > 25 {
		maxExperience = 25
	}

	// Experience is tenure since hire, capped by working age. The
	// minimum draw of 366 days keeps tenure at a full year even across
	// a leap day.
	hireDate := g.now.AddDate(0, 0, -src.intBetween(366, 9125))
	experience := util.CalculateAge(hireDate, g.now)
	if experience > maxExperience {
		experience = maxExperience
	}

	// Roughly three in four members are on an active shift.
	isActive := src.rng.Intn(4) != 0
	var shift *string
	if isActive {
		s := pick(src.rng, Shifts)
		shift = &s
	}

	return &models.CrewMember{
		ID:              src.NewID(util.PrefixCrew),
		Name:            name,
		Age:             age,
		Sex:             sex,
		Certification:   pick(src.rng, models.Certifications),
		Role:            pick(src.rng, models.Roles),
		Department:      pick(src.rng, Departments),
		YearsExperience: experience,
		HireDate:        hireDate,
		Phone:           src.phone(),
		Email:           emailFor(name),
		IsActive:        isActive,
		CurrentShift:    shift,
		CreatedAt:       g.now,
	}
}

func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@richmondems.example.org"
}

// Generated returns all crew members produced so far, in generation order.
func (g *CrewGenerator) Generated() []*models.CrewMember {
	return g.generated
}

// CrewStats aggregates the generated crew.
type CrewStats struct {
	Total             int
	Active            int
	AverageExperience float64
	ByCertification   map[models.Certification]int
}

// Stats computes aggregate statistics over the generated crew.
func (g *CrewGenerator) Stats() CrewStats {
	stats := CrewStats{
		Total:           len(g.generated),
		ByCertification: make(map[models.Certification]int),
	}

	sum := 0
	for _, member := range g.generated {
		if member.IsActive {
			stats.Active++
		}
		stats.ByCertification[member.Certification]++
		sum += member.YearsExperience
	}
	if stats.Total > 0 {
		stats.AverageExperience = float64(sum) / float64(stats.Total)
	}
	return stats
}
