package main

import (
	"log"

	"murshid/adapters/excel"
	"murshid/internal/narrative"
	"murshid/internal/testkit"
	"murshid/ui"
)

// Demo entrypoint: serves the counselor UI over a synthetic roster with the
// in-memory filter-state store, no environment required.
func main() {
	gen := testkit.NewGenerator(42)
	roster := gen.Roster(120)
	grades := gen.SubjectGrades(120)

	app, err := ui.NewApp(ui.Config{
		Port:       "8080",
		Letterhead: narrative.DefaultLetterhead(),
		ExportDir:  ".",
	}, roster, grades, testkit.NewMemoryStateStore(), excel.NewRosterExporter())
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Println("Starting murshid UI on http://localhost:8080")
	log.Fatal(app.Start())
}
