// emsim generates synthetic emergency-services worlds: incidents, crew,
// units, hospitals, and provider notes with realistic relationships,
// persisted to SQLite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emsim/emsim/internal/config"
	"github.com/emsim/emsim/internal/database"
	"github.com/emsim/emsim/internal/gen"
	"github.com/emsim/emsim/internal/repository"
	"github.com/emsim/emsim/internal/sim"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		migrateOnly = flag.Bool("migrate-only", false, "Run migrations and exit")
		seed        = flag.Int64("seed", 0, "Random seed (overrides config; 0 keeps config value)")
		incidents   = flag.Int("incidents", -1, "Incident count (overrides config)")
		crew        = flag.Int("crew", -1, "Crew member count (overrides config)")
		units       = flag.Int("units", -1, "Unit count (overrides config)")
		hospitals   = flag.Int("hospitals", -1, "Hospital count (overrides config)")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("emsim version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	opts := runOptions{
		configPath:  *configPath,
		migrateOnly: *migrateOnly,
		seed:        *seed,
		incidents:   *incidents,
		crew:        *crew,
		units:       *units,
		hospitals:   *hospitals,
		debug:       *debugMode,
	}
	if err := run(ctx, opts); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath  string
	migrateOnly bool
	seed        int64
	incidents   int
	crew        int
	units       int
	hospitals   int
	debug       bool
}

func run(ctx context.Context, opts runOptions) error {
	cfg, cfgPath, err := config.Load(opts.configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	applyOverrides(cfg, opts)

	if err := setupLogging(cfg, opts.debug); err != nil {
		return err
	}

	slog.Info("emsim starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	migrator, err := database.NewMigrator(db)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := migrator.MigrateUp(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if opts.migrateOnly {
		slog.Info("migrations complete, exiting")
		return nil
	}

	src := newSource(cfg)
	coordinator := sim.NewCoordinator(slog.Default(), src)

	world, err := coordinator.GenerateWorld(sim.Counts{
		Incidents:        cfg.Simulation.Incidents,
		Crew:             cfg.Simulation.Crew,
		Units:            cfg.Simulation.Units,
		Hospitals:        cfg.Simulation.Hospitals,
		NotesPerIncident: cfg.Simulation.NotesPerIncident,
	})
	if err != nil {
		return fmt.Errorf("generating world: %w", err)
	}

	store := repository.NewStore(db)
	if err := store.SaveWorld(ctx, world, coordinator.Assignments()); err != nil {
		return fmt.Errorf("saving world: %w", err)
	}

	stats := coordinator.Statistics()
	slog.Info("simulation saved",
		"database", db.Path(),
		"incidents", stats.Incidents.Total,
		"crew", stats.Crew.Total,
		"units", stats.Units.Total,
		"hospitals", stats.Hospitals.Total,
		"notes", stats.Notes.Total,
		"incidents_with_units", stats.Relationships.IncidentsWithUnits,
		"incidents_with_hospitals", stats.Relationships.IncidentsWithHospitals,
	)
	return nil
}

func applyOverrides(cfg *config.Config, opts runOptions) {
	if opts.seed != 0 {
		cfg.Simulation.Seed = opts.seed
	}
	if opts.incidents >= 0 {
		cfg.Simulation.Incidents = opts.incidents
	}
	if opts.crew >= 0 {
		cfg.Simulation.Crew = opts.crew
	}
	if opts.units >= 0 {
		cfg.Simulation.Units = opts.units
	}
	if opts.hospitals >= 0 {
		cfg.Simulation.Hospitals = opts.hospitals
	}
}

func newSource(cfg *config.Config) *gen.Source {
	var src *gen.Source
	if cfg.Simulation.Seed != 0 {
		src = gen.NewSource(cfg.Simulation.Seed)
		slog.Info("using fixed seed", "seed", cfg.Simulation.Seed)
	} else {
		src = gen.NewRandomSource()
	}
	return src.WithRegion(cfg.Region.Region())
}

func setupLogging(cfg *config.Config, debug bool) error {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	var handler slog.Handler
	if cfg.Logging.File != "" {
		logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		handler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
