// Package gen provides the entity generators for emsim. Each generator
// produces independently valid entities from range-bounded random draws
// and accumulates them for later statistics queries. All randomness flows
// through an injected Source so a fixed seed reproduces an identical
// world.
package gen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/emsim/emsim/internal/models"
	"github.com/emsim/emsim/internal/util"
)

// Source bundles the random stream, ID generator, and geographic bounds
// shared by every generator in a run.
type Source struct {
	rng    *rand.Rand
	ids    *util.IDGenerator
	region models.Region
}

// NewSource creates a deterministic source from a seed. IDs as well as
// attribute draws are reproducible.
func NewSource(seed int64) *Source {
	rng := rand.New(rand.NewSource(seed))
	return &Source{
		rng:    rng,
		ids:    util.NewSeededIDGenerator(rng),
		region: models.RichmondRegion,
	}
}

// NewRandomSource creates a time-seeded source with UUID-backed IDs.
func NewRandomSource() *Source {
	return &Source{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		ids:    util.NewIDGenerator(),
		region: models.RichmondRegion,
	}
}

// WithRegion overrides the geographic bounding rectangle.
func (s *Source) WithRegion(r models.Region) *Source {
	s.region = r
	return s
}

// Rand exposes the underlying random stream.
func (s *Source) Rand() *rand.Rand {
	return s.rng
}

// NewID generates a unique prefixed identifier.
func (s *Source) NewID(prefix string) string {
	return s.ids.NewID(prefix)
}

// intBetween draws an integer in [lo, hi].
func (s *Source) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// floatBetween draws a float in [lo, hi).
func (s *Source) floatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// coordinates draws a point inside the region rectangle.
func (s *Source) coordinates() models.Coordinates {
	return models.Coordinates{
		Latitude:  round6(s.floatBetween(s.region.LatMin, s.region.LatMax)),
		Longitude: round6(s.floatBetween(s.region.LngMin, s.region.LngMax)),
	}
}

// address composes a street address from the catalogs.
func (s *Source) address() string {
	return fmt.Sprintf("%d %s, %s, Richmond, VA %s",
		s.intBetween(100, 9999),
		pick(s.rng, Streets),
		pick(s.rng, Areas),
		pick(s.rng, ZipCodes),
	)
}

// location composes an address plus in-bounds coordinates.
func (s *Source) location() models.Location {
	return models.Location{
		Address:     s.address(),
		Coordinates: s.coordinates(),
	}
}

// phone draws a 555 phone number.
func (s *Source) phone() string {
	return fmt.Sprintf("555-%03d-%04d", s.intBetween(100, 999), s.intBetween(1000, 9999))
}

// fullName draws a name matching the given sex.
func (s *Source) fullName(sex models.Sex) string {
	given := pick(s.rng, FemaleGivenNames)
	if sex == models.SexMale {
		given = pick(s.rng, MaleGivenNames)
	}
	return given + " " + pick(s.rng, Surnames)
}

// sex draws a sex with equal probability.
func (s *Source) sex() models.Sex {
	if s.rng.Float32() < 0.5 {
		return models.SexMale
	}
	return models.SexFemale
}

// timeBetween draws a timestamp uniformly in [start, end].
func (s *Source) timeBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	d := end.Sub(start)
	return start.Add(time.Duration(s.rng.Int63n(int64(d))))
}

func round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}

// pick returns a uniformly random element of the slice.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// ValidationError reports an entity that still violated an invariant
// after the single regeneration retry.
type ValidationError struct {
	Kind string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated %s failed validation: %v", e.Kind, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
