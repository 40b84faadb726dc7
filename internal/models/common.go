// Package models defines the domain models for emsim.
package models

import (
	"fmt"
	"math"
)

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceTo returns the Euclidean distance between two coordinate pairs
// on raw lat/lng values. Good enough for ranking points inside a single
// metro area; not a geodesic distance.
func (c Coordinates) DistanceTo(o Coordinates) float64 {
	dLat := c.Latitude - o.Latitude
	dLng := c.Longitude - o.Longitude
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// Region is a bounding rectangle for generated coordinates.
type Region struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// Contains reports whether the coordinates fall inside the region.
func (r Region) Contains(c Coordinates) bool {
	return c.Latitude >= r.LatMin && c.Latitude <= r.LatMax &&
		c.Longitude >= r.LngMin && c.Longitude <= r.LngMax
}

// Validate checks that the region is a non-empty rectangle.
func (r Region) Validate() error {
	if r.LatMin >= r.LatMax {
		return fmt.Errorf("lat_min %v must be below lat_max %v", r.LatMin, r.LatMax)
	}
	if r.LngMin >= r.LngMax {
		return fmt.Errorf("lng_min %v must be below lng_max %v", r.LngMin, r.LngMax)
	}
	return nil
}

// RichmondRegion is the default generation boundary: Richmond, VA city
// limits, approximately.
var RichmondRegion = Region{
	LatMin: 37.45,
	LatMax: 37.65,
	LngMin: -77.65,
	LngMax: -77.35,
}

// Location is a street address with coordinates.
type Location struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// Sex represents recorded sex.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Valid returns true if the sex is a valid value.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// String returns the display string for the sex.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// Pagination holds pagination parameters for list queries.
type Pagination struct {
	Page     int
	PageSize int
}

// DefaultPagination returns default pagination settings.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, PageSize: 25}
}

// Offset calculates the SQL offset for the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size as limit.
func (p Pagination) Limit() int {
	if p.PageSize < 1 {
		return 25
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}
