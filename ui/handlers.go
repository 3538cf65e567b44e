package ui

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"murshid/domain/core"
	"murshid/domain/filter"
	"murshid/domain/record"
	"murshid/internal/filtering"
	"murshid/internal/inference"
)

// sessionCookie carries the per-browser session key the filter state is
// stored under
const sessionCookie = "murshid_session"

// session returns the request's session ID, minting one and setting the
// cookie on first contact.
func (a *App) session(w http.ResponseWriter, r *http.Request) core.SessionID {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := core.ParseSessionID(c.Value); err == nil {
			return id
		}
	}
	id := core.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// filterOption is one checkbox of the filter panel
type filterOption struct {
	Value    string
	Selected bool
}

// filterGroup is one field's options in the filter panel
type filterGroup struct {
	Field   string
	Options []filterOption
}

// rosterPage is the roster template payload
type rosterPage struct {
	Columns  []string
	Students []record.Student
	Groups   []filterGroup
	Sort     filter.Spec
	Total    int
	Shown    int
}

// rosterColumns are the table columns of the roster page, in display order
var rosterColumns = []string{
	record.FieldFullName,
	record.FieldGender,
	record.FieldBirthDate,
	record.FieldClass,
	record.FieldDirectorate,
	record.FieldRepeatYear,
	record.FieldTermOneAverage,
	record.FieldTermTwoAverage,
	record.FieldHasIssue,
}

func (a *App) handleRoster(w http.ResponseWriter, r *http.Request) {
	state, err := a.store.Get(r.Context(), a.session(w, r), viewName)
	if err != nil {
		log.Printf("[UI] Failed to load filter state, using empty: %v", err)
		state = filter.NewState(viewName)
	}

	shown := a.service.View(a.roster, state)

	var groups []filterGroup
	for _, f := range a.registry.FilterableFields() {
		options := f.Options
		if len(options) == 0 {
			options = filtering.DistinctValues(a.roster, f.Name)
		}
		group := filterGroup{Field: f.Name}
		for _, opt := range options {
			group.Options = append(group.Options, filterOption{
				Value:    opt,
				Selected: contains(state.Criteria[f.Name], opt),
			})
		}
		groups = append(groups, group)
	}

	a.renderTemplate(w, "roster.html", rosterPage{
		Columns:  rosterColumns,
		Students: shown,
		Groups:   groups,
		Sort:     state.Sort,
		Total:    len(a.roster),
		Shown:    len(shown),
	})
}

func (a *App) handleToggleFilter(w http.ResponseWriter, r *http.Request) {
	field := r.FormValue("field")
	value := r.FormValue("value")
	if field == "" || !a.registry.Has(field) {
		http.Error(w, "unknown filter field", http.StatusBadRequest)
		return
	}

	session := a.session(w, r)
	state, err := a.store.Get(r.Context(), session, viewName)
	if err != nil {
		http.Error(w, "failed to load filter state", http.StatusInternalServerError)
		return
	}
	state.Criteria.Toggle(field, value)
	if err := a.store.Save(r.Context(), session, state); err != nil {
		http.Error(w, "failed to save filter state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/roster", http.StatusSeeOther)
}

func (a *App) handleSetSort(w http.ResponseWriter, r *http.Request) {
	field := r.FormValue("field")
	if field == "" || !a.registry.Has(field) {
		http.Error(w, "unknown sort field", http.StatusBadRequest)
		return
	}
	direction := filter.Ascending
	if r.FormValue("direction") == string(filter.Descending) {
		direction = filter.Descending
	}

	rule := inference.DefaultRule(a.roster, field, direction)
	// The inferred type is advisory; an explicit override wins
	switch filter.ValueType(r.FormValue("type")) {
	case filter.TypeNumber:
		rule.ValueType = filter.TypeNumber
	case filter.TypeDate:
		rule.ValueType = filter.TypeDate
	case filter.TypeString:
		rule.ValueType = filter.TypeString
	}

	session := a.session(w, r)
	state, err := a.store.Get(r.Context(), session, viewName)
	if err != nil {
		http.Error(w, "failed to load filter state", http.StatusInternalServerError)
		return
	}
	state.Sort = state.Sort.Push(rule)
	if err := a.store.Save(r.Context(), session, state); err != nil {
		http.Error(w, "failed to save filter state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/roster", http.StatusSeeOther)
}

func (a *App) handleResetState(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Clear(r.Context(), a.session(w, r), viewName); err != nil {
		http.Error(w, "failed to reset filter state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/roster", http.StatusSeeOther)
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	tr, err := a.service.Build(r.Context(), a.roster, a.grades)
	if err != nil {
		log.Printf("[UI] Report build failed: %v", err)
		http.Error(w, "report build failed", http.StatusInternalServerError)
		return
	}
	a.renderTemplate(w, "report.html", tr)
}

func (a *App) handlePrintNarrative(w http.ResponseWriter, r *http.Request) {
	doc := a.service.Generator().BuildFlaggedDocument(a.config.Letterhead, a.service.Flagged(a.roster))
	a.renderTemplate(w, "print.html", map[string]interface{}{
		"Title": doc.Title,
		"Body":  template.HTML(doc.HTML()),
	})
}

func (a *App) handlePrintList(w http.ResponseWriter, r *http.Request) {
	doc := a.service.Generator().BuildFlaggedList(a.config.Letterhead, a.service.Flagged(a.roster))
	a.renderTemplate(w, "print.html", map[string]interface{}{
		"Title": doc.Title,
		"Body":  template.HTML(doc.HTML()),
	})
}

func (a *App) handleExportFlagged(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(a.config.ExportDir,
		"flagged-"+time.Now().Format("2006-01-02")+".xlsx")
	if err := a.exporter.Export(r.Context(), path, a.service.Flagged(a.roster)); err != nil {
		log.Printf("[UI] Export failed: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/roster", http.StatusSeeOther)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
