// Package filter defines the criteria and sort types shared by the engines,
// the UI layer and the persistence adapter.
package filter

import (
	"fmt"

	"murshid/domain/core"
)

// Criteria maps a filterable field name to its accepted values. An absent or
// empty list means the field is unconstrained. Matching is OR within one
// field's list and AND across fields.
type Criteria map[string][]string

// NewCriteria creates an empty criteria set
func NewCriteria() Criteria {
	return make(Criteria)
}

// Set replaces the accepted values for a field; an empty list clears it
func (c Criteria) Set(field string, values []string) {
	if len(values) == 0 {
		delete(c, field)
		return
	}
	accepted := make([]string, len(values))
	copy(accepted, values)
	c[field] = accepted
}

// Toggle adds the value to the field's accepted list, or removes it when
// already present. The UI checkbox panel is built on this.
func (c Criteria) Toggle(field, value string) {
	for i, v := range c[field] {
		if v == value {
			c[field] = append(c[field][:i], c[field][i+1:]...)
			if len(c[field]) == 0 {
				delete(c, field)
			}
			return
		}
	}
	c[field] = append(c[field], value)
}

// Active reports whether the field carries a non-empty constraint
func (c Criteria) Active(field string) bool {
	return len(c[field]) > 0
}

// IsEmpty reports whether no field is constrained
func (c Criteria) IsEmpty() bool {
	for _, values := range c {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so engine callers never alias UI state
func (c Criteria) Clone() Criteria {
	out := make(Criteria, len(c))
	for field, values := range c {
		accepted := make([]string, len(values))
		copy(accepted, values)
		out[field] = accepted
	}
	return out
}

// ValueType classifies how a field's values compare during sorting
type ValueType string

const (
	TypeString ValueType = "string"
	TypeNumber ValueType = "number"
	TypeDate   ValueType = "date"
)

// Direction is the sort direction of one rule
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortRule orders records by one field. The inferred ValueType is advisory;
// users may override it from the sort panel.
type SortRule struct {
	Field     string    `json:"field"`
	ValueType ValueType `json:"value_type"`
	Direction Direction `json:"direction"`
}

// ID derives the rehydration identity of a rule
func (r SortRule) ID() string {
	return fmt.Sprintf("%s|%s|%s", r.Field, r.ValueType, r.Direction)
}

// Spec is an ordered sequence of sort rules; rule order is priority order,
// the first rule being the primary key.
type Spec []SortRule

// Clone returns a copy of the spec
func (s Spec) Clone() Spec {
	out := make(Spec, len(s))
	copy(out, s)
	return out
}

// Push appends a rule, replacing any earlier rule on the same field while
// keeping that field's priority position.
func (s Spec) Push(rule SortRule) Spec {
	for i, r := range s {
		if r.Field == rule.Field {
			out := s.Clone()
			out[i] = rule
			return out
		}
	}
	return append(s.Clone(), rule)
}

// StateVersion is bumped whenever the persisted State shape changes;
// snapshots with an older version are discarded on load.
const StateVersion = 2

// State is the persisted filter panel snapshot: criteria plus sort spec,
// stored per named view in the key-value store.
type State struct {
	Name      string         `json:"name"`
	Version   int            `json:"version"`
	Criteria  Criteria       `json:"criteria"`
	Sort      Spec           `json:"sort"`
	UpdatedAt core.Timestamp `json:"updated_at"`
}

// NewState creates an empty current-version snapshot for a named view
func NewState(name string) *State {
	return &State{
		Name:      name,
		Version:   StateVersion,
		Criteria:  NewCriteria(),
		UpdatedAt: core.Now(),
	}
}

// Compatible reports whether a loaded snapshot can be rehydrated
func (s *State) Compatible() bool {
	return s != nil && s.Version == StateVersion
}
