// Package schema holds the static questionnaire definition: sections, field
// kinds, option sets and the conditional-visibility map. The registry is data,
// not behavior; engines consult it instead of scattering field-name string
// comparisons through report logic.
package schema

import (
	"murshid/domain/core"
	"murshid/domain/record"
)

// FieldKind classifies how a field is captured and compared
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindNumber      FieldKind = "number"
	KindDate        FieldKind = "date"
	KindSelect      FieldKind = "select"
	KindMultiSelect FieldKind = "multiselect"
)

// Dependency declares that a field is only meaningful while its governor
// field holds the required value. This is an authoring convention for the
// form renderer; records are never forced to satisfy it.
type Dependency struct {
	Governor      string
	RequiredValue string
}

// Field describes one question
type Field struct {
	Name       string
	Kind       FieldKind
	Options    []string   // fixed option set for select/multiselect
	DependsOn  *Dependency
	Filterable bool // whether the field appears in the filter panel
}

// Section groups questions the way the printed form does
type Section struct {
	Title  string
	Fields []Field
}

// Registry is the full questionnaire definition plus derived lookup tables
type Registry struct {
	sections     []Section
	byName       map[string]Field
	dependencies map[string]Dependency
}

// New builds a registry from sections and resolves the dependency map up front
func New(sections []Section) *Registry {
	r := &Registry{
		sections:     sections,
		byName:       make(map[string]Field),
		dependencies: make(map[string]Dependency),
	}
	for _, sec := range sections {
		for _, f := range sec.Fields {
			r.byName[f.Name] = f
			if f.DependsOn != nil {
				r.dependencies[f.Name] = *f.DependsOn
			}
		}
	}
	return r
}

// Sections returns the ordered form sections
func (r *Registry) Sections() []Section {
	return r.sections
}

// Field looks up a field definition by name
func (r *Registry) Field(name string) (Field, error) {
	f, ok := r.byName[name]
	if !ok {
		return Field{}, core.ErrUnknownField
	}
	return f, nil
}

// Has reports whether the field is declared
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// DependencyOf returns the visibility rule governing a field, if any
func (r *Registry) DependencyOf(name string) (Dependency, bool) {
	d, ok := r.dependencies[name]
	return d, ok
}

// Visible reports whether a field is relevant for a given student: either it
// has no governor, or the governor currently holds the required value.
func (r *Registry) Visible(s record.Student, field string) bool {
	dep, ok := r.dependencies[field]
	if !ok {
		return true
	}
	return s.Scalar(dep.Governor) == dep.RequiredValue
}

// FilterableFields returns the fields offered in the filter panel, in form order
func (r *Registry) FilterableFields() []Field {
	var out []Field
	for _, sec := range r.sections {
		for _, f := range sec.Fields {
			if f.Filterable {
				out = append(out, f)
			}
		}
	}
	return out
}
