// Command king runs the island kingdom game: eight years in office managing
// rallods, countrymen and land.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/king/internal/config"
	"github.com/talgya/king/internal/console"
	"github.com/talgya/king/internal/engine"
	"github.com/talgya/king/internal/entropy"
	"github.com/talgya/king/internal/persistence"
	"github.com/talgya/king/internal/report"
	"github.com/talgya/king/internal/tuning"
)

const intro = `
                                KING
You are the new premier of the island of Setats Detinu.
Your term in office is %d years. Each year you decide how much land to sell
to industry, how many rallods to give your countrymen to live on, how much
land to plant and how much to spend on pollution control.
Answer 0 to any question to leave it for this year.
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Game text goes to stdout, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("king failed", "error", err)
		os.Exit(1)
	}
}

// run plays one reign. Deferred cleanup runs before main exits.
func run(cfg config.Config) error {
	// ── Tuning ────────────────────────────────────────────────────────
	tn := tuning.Default()
	if cfg.TuningPath != "" {
		var err error
		tn, err = tuning.Load(cfg.TuningPath)
		if err != nil {
			return fmt.Errorf("load tuning %s: %w", cfg.TuningPath, err)
		}
		slog.Info("tuning loaded", "path", cfg.TuningPath, "max_term", tn.MaxTerm)
	}

	// ── Collaborators ─────────────────────────────────────────────────
	rng := entropy.New(cfg.Seed)
	slog.Info("randomness seeded", "seed", rng.Seed())

	con := console.New(os.Stdin, os.Stdout)
	deps := engine.Deps{
		IO:     con,
		Rand:   rng,
		Trend:  entropy.NewDrift(rng.Seed(), tn.Prices.DriftFrequency),
		Status: report.Formatter{},
		Tuning: tn,
	}

	// ── Database ──────────────────────────────────────────────────────
	var db *persistence.DB
	if cfg.Autosave || cfg.Start == config.StartResume {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create data directory %s: %w", dir, err)
			}
		}
		var err error
		db, err = persistence.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		slog.Info("database opened", "path", cfg.DBPath)
	}

	// ── Start or continue a reign ─────────────────────────────────────
	var reign *engine.Reign
	switch cfg.Start {
	case config.StartLoad:
		r, ok, err := engine.LoadReign(deps)
		if err != nil {
			return fmt.Errorf("read saved values: %w", err)
		}
		if !ok {
			con.WriteLine("Goodbye.")
			return nil
		}
		reign = r
	case config.StartResume:
		r, err := db.ResumeReign(deps)
		switch {
		case errors.Is(err, persistence.ErrNoSave):
			slog.Warn("nothing to resume, starting a new reign")
			r = engine.NewReign(deps)
		case err != nil:
			return fmt.Errorf("resume reign: %w", err)
		}
		reign = r
	default:
		reign = engine.NewReign(deps)
	}

	if db != nil && cfg.Autosave {
		reign.OnYear = db.SaveReign
	}

	con.Write(fmt.Sprintf(intro, tn.MaxTerm))

	outcome, err := reign.Run()
	if errors.Is(err, io.EOF) {
		c := reign.Country
		con.WriteLine("")
		con.WriteLine(fmt.Sprintf("Your reign is interrupted after %d years with %.0f rallods, "+
			"%.0f countrymen, %.0f workers and %.0f sq. miles of farm land.",
			reign.YearsCompleted(), c.Rallods(), c.Countrymen(), c.Workers(), c.ArableLand()))
		if db != nil && cfg.Autosave {
			con.WriteLine("Set KING_START=resume to continue where you left off.")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reign %s: %w", reign.ID, err)
	}

	// A finished reign is not resumable.
	if db != nil && outcome.Over() {
		if err := db.SaveMeta("last_reign", ""); err != nil {
			return fmt.Errorf("close reign: %w", err)
		}
	}
	return nil
}
