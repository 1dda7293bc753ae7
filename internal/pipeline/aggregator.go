package pipeline

import (
	"sort"

	"github.com/givepool/givepool/internal/model"
)

// CategoryStats holds funding totals for one category.
type CategoryStats struct {
	Category  model.Category
	Pools     int
	Active    int
	Completed int
	Target    float64
	Raised    float64
}

// Progress returns raised/target, capped at 1.
func (c CategoryStats) Progress() float64 {
	if c.Target <= 0 {
		return 0
	}
	if c.Raised >= c.Target {
		return 1
	}
	return c.Raised / c.Target
}

// Summary holds totals across a pool collection.
type Summary struct {
	Pools     int
	Active    int
	Completed int
	Target    float64
	Raised    float64
	Funded    int // pools at or above target
}

// Progress returns raised/target, capped at 1.
func (s Summary) Progress() float64 {
	if s.Target <= 0 {
		return 0
	}
	if s.Raised >= s.Target {
		return 1
	}
	return s.Raised / s.Target
}

// Summarize totals a pool collection.
func Summarize(pools []model.Pool) Summary {
	var s Summary
	for _, p := range pools {
		s.Pools++
		switch p.Status {
		case model.StatusActive:
			s.Active++
		case model.StatusCompleted:
			s.Completed++
		}
		s.Target += p.Target
		s.Raised += p.Raised
		if p.Raised >= p.Target {
			s.Funded++
		}
	}
	return s
}

// AggregateCategories returns per-category totals in canonical category
// order. Categories with no pools are omitted.
func AggregateCategories(pools []model.Pool) []CategoryStats {
	byCat := make(map[model.Category]*CategoryStats)
	for _, p := range pools {
		cs, ok := byCat[p.Category]
		if !ok {
			cs = &CategoryStats{Category: p.Category}
			byCat[p.Category] = cs
		}
		cs.Pools++
		switch p.Status {
		case model.StatusActive:
			cs.Active++
		case model.StatusCompleted:
			cs.Completed++
		}
		cs.Target += p.Target
		cs.Raised += p.Raised
	}

	result := make([]CategoryStats, 0, len(byCat))
	for _, cs := range byCat {
		result = append(result, *cs)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category.Index() < result[j].Category.Index()
	})
	return result
}

// TopByProgress returns up to n pools sorted by funding progress, highest
// first. Ties keep collection order.
func TopByProgress(pools []model.Pool, n int) []model.Pool {
	sorted := make([]model.Pool, len(pools))
	copy(sorted, pools)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Progress() > sorted[j].Progress()
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
