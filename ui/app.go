// Package ui serves the counselor's HTML surface: the filterable roster
// table, the term report and the printable documents.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"murshid/domain/record"
	"murshid/domain/schema"
	"murshid/internal/narrative"
	"murshid/internal/report"
	"murshid/ports"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// viewName is the key the roster page persists its filter state under
const viewName = "roster"

// Config holds UI application configuration
type Config struct {
	Port       string
	Letterhead narrative.Letterhead
	ExportDir  string
}

// App represents the UI application
type App struct {
	router    *chi.Mux
	config    Config
	service   *report.Service
	store     ports.FilterStateStore
	exporter  ports.RosterExporter
	registry  *schema.Registry
	roster    []record.Student
	grades    []report.SubjectGrades
	templates *template.Template
}

// NewApp creates a new UI application over a loaded roster snapshot
func NewApp(config Config, roster []record.Student, grades []report.SubjectGrades,
	store ports.FilterStateStore, exporter ports.RosterExporter) (*App, error) {

	funcMap := template.FuncMap{
		"percent": narrative.FormatPercent,
		"grade":   narrative.FormatGrade,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		config:    config,
		service:   report.NewService(),
		store:     store,
		exporter:  exporter,
		registry:  schema.Default(),
		roster:    roster,
		grades:    grades,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/roster", http.StatusFound)
	})

	a.router.Get("/roster", a.handleRoster)
	a.router.Post("/roster/filter", a.handleToggleFilter)
	a.router.Post("/roster/sort", a.handleSetSort)
	a.router.Post("/roster/reset", a.handleResetState)

	a.router.Get("/report", a.handleReport)
	a.router.Get("/report/print", a.handlePrintNarrative)
	a.router.Get("/report/list", a.handlePrintList)

	a.router.Post("/export/flagged", a.handleExportFlagged)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Port
	log.Printf("[UI] Serving counselor UI on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// renderTemplate executes a template or reports a 500
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("[UI] Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
