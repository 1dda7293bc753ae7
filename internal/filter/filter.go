package filter

import (
	"strings"

	"github.com/givepool/givepool/internal/model"
)

// Apply returns the pools matching every active predicate of s, in input order.
// The input slice is never modified.
func Apply(pools []model.Pool, s State) []model.Pool {
	needle := strings.ToLower(s.query)
	result := make([]model.Pool, 0, len(pools))
	for _, p := range pools {
		if matches(p, s, needle) {
			result = append(result, p)
		}
	}
	return result
}

// Matches reports whether a single pool passes s.
func Matches(p model.Pool, s State) bool {
	return matches(p, s, strings.ToLower(s.query))
}

func matches(p model.Pool, s State, needle string) bool {
	return matchText(p, needle) && matchCategory(p, s) && matchStatus(p, s)
}

func matchText(p model.Pool, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func matchCategory(p model.Pool, s State) bool {
	if s.categories == [numCategories]bool{} {
		return true
	}
	return s.CategorySelected(p.Category)
}

func matchStatus(p model.Pool, s State) bool {
	if s.statuses == [numStatuses]bool{} {
		return true
	}
	return s.StatusSelected(p.Status)
}
