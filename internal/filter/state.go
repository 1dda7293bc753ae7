// Package filter implements the pool browser's search and facet filtering.
//
// A State is an immutable snapshot of the user's selections. Transitions
// (SetQuery, ToggleCategory, ToggleStatus, Clear) return a new State and
// leave the receiver untouched, so a State can be used as a map key or
// compared with ==.
package filter

import (
	"strings"

	"github.com/givepool/givepool/internal/model"
)

const (
	numCategories = 5
	numStatuses   = 2
)

// State is the current search query plus category and status selections.
// The zero value selects everything.
type State struct {
	query      string
	categories [numCategories]bool
	statuses   [numStatuses]bool
}

// NewState builds a state from explicit selections. Unknown values are ignored.
func NewState(query string, categories []model.Category, statuses []model.Status) State {
	s := State{query: query}
	for _, c := range categories {
		if i := c.Index(); i >= 0 {
			s.categories[i] = true
		}
	}
	for _, st := range statuses {
		if i := st.Index(); i >= 0 {
			s.statuses[i] = true
		}
	}
	return s
}

// Query returns the raw search text.
func (s State) Query() string { return s.query }

// SetQuery replaces the search text.
func (s State) SetQuery(q string) State {
	s.query = q
	return s
}

// ToggleCategory adds c to the selection, or removes it if already selected.
func (s State) ToggleCategory(c model.Category) State {
	if i := c.Index(); i >= 0 {
		s.categories[i] = !s.categories[i]
	}
	return s
}

// ToggleStatus adds st to the selection, or removes it if already selected.
func (s State) ToggleStatus(st model.Status) State {
	if i := st.Index(); i >= 0 {
		s.statuses[i] = !s.statuses[i]
	}
	return s
}

// Clear returns the empty state.
func (s State) Clear() State {
	return State{}
}

// CategorySelected reports whether c is in the category selection.
func (s State) CategorySelected(c model.Category) bool {
	i := c.Index()
	return i >= 0 && s.categories[i]
}

// StatusSelected reports whether st is in the status selection.
func (s State) StatusSelected(st model.Status) bool {
	i := st.Index()
	return i >= 0 && s.statuses[i]
}

// SelectedCategories returns the selected categories in canonical order.
func (s State) SelectedCategories() []model.Category {
	var out []model.Category
	for i, c := range model.Categories() {
		if s.categories[i] {
			out = append(out, c)
		}
	}
	return out
}

// SelectedStatuses returns the selected statuses in canonical order.
func (s State) SelectedStatuses() []model.Status {
	var out []model.Status
	for i, st := range model.Statuses() {
		if s.statuses[i] {
			out = append(out, st)
		}
	}
	return out
}

// HasSelections reports whether any category or status is selected.
func (s State) HasSelections() bool {
	return s.categories != [numCategories]bool{} || s.statuses != [numStatuses]bool{}
}

// IsEmpty reports whether no dimension constrains results.
func (s State) IsEmpty() bool {
	return s.query == "" && !s.HasSelections()
}

// String renders the state as a compact pill, e.g. `"ocean" │ Health │ Active`.
func (s State) String() string {
	var parts []string
	if s.query != "" {
		parts = append(parts, `"`+s.query+`"`)
	}
	for _, c := range s.SelectedCategories() {
		parts = append(parts, string(c))
	}
	for _, st := range s.SelectedStatuses() {
		parts = append(parts, string(st))
	}
	if len(parts) == 0 {
		return "all pools"
	}
	return strings.Join(parts, " │ ")
}
