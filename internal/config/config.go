// Package config provides configuration management for emsim.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"

	"github.com/emsim/emsim/internal/models"
)

// Config holds the complete application configuration.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Region     RegionConfig     `toml:"region"`
	Logging    LoggingConfig    `toml:"logging"`
	Database   DatabaseConfig   `toml:"database"`
}

// SimulationConfig controls world size and reproducibility.
type SimulationConfig struct {
	// Seed drives all random draws. Zero means a fresh random seed
	// per run; any other value reproduces the same world exactly.
	Seed int64 `toml:"seed"`

	Incidents        int `toml:"incidents"`
	Crew             int `toml:"crew"`
	Units            int `toml:"units"`
	Hospitals        int `toml:"hospitals"`
	NotesPerIncident int `toml:"notes_per_incident"`
}

// RegionConfig bounds generated coordinates.
type RegionConfig struct {
	LatMin float64 `toml:"lat_min"`
	LatMax float64 `toml:"lat_max"`
	LngMin float64 `toml:"lng_min"`
	LngMax float64 `toml:"lng_max"`
}

// Region converts the config bounds to a model region.
func (r *RegionConfig) Region() models.Region {
	return models.Region{
		LatMin: r.LatMin, LatMax: r.LatMax,
		LngMin: r.LngMin, LngMax: r.LngMax,
	}
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DatabaseConfig controls SQLite database settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Simulation.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("simulation: %w", err))
	}
	if err := c.Region.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("region: %w", err))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks that the simulation configuration is valid.
func (s *SimulationConfig) Validate() error {
	var errs []error

	if s.Incidents < 0 {
		errs = append(errs, errors.New("incidents must be non-negative"))
	}
	if s.Crew < 0 {
		errs = append(errs, errors.New("crew must be non-negative"))
	}
	if s.Units < 0 {
		errs = append(errs, errors.New("units must be non-negative"))
	}
	if s.Hospitals < 0 {
		errs = append(errs, errors.New("hospitals must be non-negative"))
	}
	if s.NotesPerIncident < 0 {
		errs = append(errs, errors.New("notes_per_incident must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks that the region bounds form a non-empty box.
func (r *RegionConfig) Validate() error {
	return r.Region().Validate()
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return fmt.Errorf("invalid level: %s", l.Level)
	}
}

// Validate checks that the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	if d.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

// Default returns the standard configuration: a small Richmond-area
// world with a fresh seed per run.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Seed:             0,
			Incidents:        10,
			Crew:             15,
			Units:            8,
			Hospitals:        5,
			NotesPerIncident: 3,
		},
		Region: RegionConfig{
			LatMin: models.RichmondRegion.LatMin,
			LatMax: models.RichmondRegion.LatMax,
			LngMin: models.RichmondRegion.LngMin,
			LngMax: models.RichmondRegion.LngMax,
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "",
		},
		Database: DatabaseConfig{
			Path: "emsim.db",
		},
	}
}
