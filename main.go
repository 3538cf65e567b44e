package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"murshid/adapters/excel"
	"murshid/adapters/postgres"
	"murshid/domain/record"
	"murshid/domain/schema"
	"murshid/internal/config"
	"murshid/internal/narrative"
	"murshid/internal/report"
	"murshid/internal/testkit"
	"murshid/ports"
	"murshid/ui"
)

func main() {
	// .env is optional; a missing file just means real env vars are in use
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := buildStateStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize filter-state store: %v", err)
	}

	roster, grades, err := buildRoster(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	log.Printf("[Main] Roster loaded: %d students", len(roster))

	if err := os.MkdirAll(cfg.Paths.ExportDir, 0o755); err != nil {
		log.Fatalf("Failed to create export directory: %v", err)
	}

	letterhead := narrative.DefaultLetterhead()
	letterhead.Directorate = cfg.Letterhead.Directorate
	letterhead.Institution = cfg.Letterhead.Institution
	letterhead.Counselor = cfg.Letterhead.Counselor
	letterhead.SchoolYear = cfg.Letterhead.SchoolYear

	app, err := ui.NewApp(ui.Config{
		Port:       cfg.Server.Port,
		Letterhead: letterhead,
		ExportDir:  cfg.Paths.ExportDir,
	}, roster, grades, store, excel.NewRosterExporter())
	if err != nil {
		log.Fatalf("Failed to create UI app: %v", err)
	}

	log.Printf("[Main] Serving on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}

// buildStateStore connects the postgres filter-state repository when a
// database URL is configured, otherwise falls back to the in-memory store.
func buildStateStore(ctx context.Context, cfg *config.Config) (ports.FilterStateStore, error) {
	if cfg.Database.URL == "" {
		log.Println("[Main] DATABASE_URL not set, using in-memory filter-state store")
		return testkit.NewMemoryStateStore(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	repo := postgres.NewFilterStateRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	log.Println("[Main] Connected to postgres filter-state store")
	return repo, nil
}

// buildRoster imports the configured roster file, deriving the general-average
// grade arrays from its term columns; without a file it falls back to the
// synthetic demo roster.
func buildRoster(ctx context.Context, cfg *config.Config) ([]record.Student, []report.SubjectGrades, error) {
	if cfg.Paths.RosterFile == "" {
		log.Println("[Main] ROSTER_FILE not set, generating demo roster")
		gen := testkit.NewGenerator(42)
		return gen.Roster(120), gen.SubjectGrades(120), nil
	}

	reader := excel.NewRosterReader(cfg.Paths.RosterFile, schema.Default())
	roster, err := reader.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return roster, report.GradesFromRoster(roster), nil
}
