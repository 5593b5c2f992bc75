package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/averyholm/telos/internal/cli"
	"github.com/averyholm/telos/internal/db"
	"github.com/averyholm/telos/internal/repository"
	"github.com/averyholm/telos/internal/service"
	"github.com/averyholm/telos/internal/suggest"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.telos/telos.db
	dbPath := os.Getenv("TELOS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".telos", "telos.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	programRepo := repository.NewSQLiteProgramRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	equivalencyRepo := repository.NewSQLiteEquivalencyRepo(database)

	// Matcher tuning: the level floor is overridable for programs that
	// accept low-numbered courses.
	matchCfg := suggest.DefaultConfig()
	if raw := os.Getenv("TELOS_MIN_LEVEL"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parsing TELOS_MIN_LEVEL %q: %w", raw, err)
		}
		matchCfg.MinCourseLevel = level
	}

	app := &cli.App{
		Programs: service.NewProgramService(programRepo),
		Plans:    service.NewPlanService(planRepo, programRepo),
		Catalog:  service.NewCatalogService(catalogRepo),
		Progress: service.NewProgressService(planRepo, programRepo, equivalencyRepo),
		Suggest:  service.NewSuggestService(planRepo, programRepo, catalogRepo, matchCfg),
		Import:   service.NewImportService(programRepo, planRepo, catalogRepo, equivalencyRepo),

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
