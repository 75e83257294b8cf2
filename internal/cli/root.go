// Package cli implements the sprout command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sprout-app/sprout/internal/app/challenge"
	"github.com/sprout-app/sprout/internal/app/garden"
	"github.com/sprout-app/sprout/internal/app/ledger"
	"github.com/sprout-app/sprout/internal/config"
	"github.com/sprout-app/sprout/internal/infra/sqlite"
)

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Sprout — budgeting with a garden of savings challenges",
	Long: `Sprout tracks spending by category and turns saving into gardening:
recording expenses earns seeds, seeds plant savings challenges, and
completed challenges grow fruits.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (overrides config)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sprout.toml"
	}
	return filepath.Join(home, ".sprout", "sprout.toml")
}

// app bundles the wired services behind the CLI commands.
type app struct {
	cfg       config.Config
	db        *sqlite.DB
	economy   *garden.Economy
	factory   *challenge.Factory
	engine    *challenge.Engine
	confirmer *challenge.Confirmer
	ledger    *ledger.Service
}

// openApp loads config, opens the database, and wires the services.
// Callers must Close when done.
func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	economy := garden.NewEconomy(db)
	return &app{
		cfg:       cfg,
		db:        db,
		economy:   economy,
		factory:   challenge.NewFactory(db, economy),
		engine:    challenge.NewEngine(db, db),
		confirmer: challenge.NewConfirmer(db, economy),
		ledger:    ledger.NewService(db, economy, cfg.Garden.SeedsPerTransaction),
	}, nil
}

// Close releases the database handle.
func (a *app) Close() {
	_ = a.db.Close()
}
