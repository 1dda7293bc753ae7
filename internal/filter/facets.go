package filter

import "github.com/givepool/givepool/internal/model"

// Facets counts pools per category and per status.
type Facets struct {
	Total      int                    `json:"total"`
	Categories map[model.Category]int `json:"categories"`
	Statuses   map[model.Status]int   `json:"statuses"`
	Target     float64                `json:"target"`
	Raised     float64                `json:"raised"`
}

// CountFacets tallies pools. Every known category and status is present in
// the result, with zero when nothing matched.
func CountFacets(pools []model.Pool) Facets {
	f := Facets{
		Categories: make(map[model.Category]int, numCategories),
		Statuses:   make(map[model.Status]int, numStatuses),
	}
	for _, c := range model.Categories() {
		f.Categories[c] = 0
	}
	for _, s := range model.Statuses() {
		f.Statuses[s] = 0
	}
	for _, p := range pools {
		f.Total++
		f.Categories[p.Category]++
		f.Statuses[p.Status]++
		f.Target += p.Target
		f.Raised += p.Raised
	}
	return f
}

// FacetsFor counts, for each category, how many pools would match if only
// the category dimension were ignored; likewise for statuses. This is what a
// sidebar shows next to each checkbox.
func FacetsFor(pools []model.Pool, s State) Facets {
	byCategory := CountFacets(Apply(pools, State{query: s.query, statuses: s.statuses}))
	byStatus := CountFacets(Apply(pools, State{query: s.query, categories: s.categories}))
	all := CountFacets(Apply(pools, s))
	all.Categories = byCategory.Categories
	all.Statuses = byStatus.Statuses
	return all
}
