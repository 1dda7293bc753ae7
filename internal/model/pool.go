// Package model defines domain types for givepool donation pools.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLength bounds a pool description, in characters.
const MaxDescriptionLength = 500

// Pool is a donation campaign with a funding target and running total.
// Pools are immutable once loaded.
type Pool struct {
	ID          string   `json:"id" toml:"id"`
	Title       string   `json:"title" toml:"title"`
	Description string   `json:"description" toml:"description"`
	Category    Category `json:"category" toml:"category"`
	Status      Status   `json:"status" toml:"status"`
	Target      float64  `json:"target" toml:"target"`
	Raised      float64  `json:"raised" toml:"raised"`
	Color       string   `json:"color" toml:"color"`
}

// Progress returns raised/target, capped at 1.
func (p Pool) Progress() float64 {
	if p.Target <= 0 {
		return 0
	}
	pct := p.Raised / p.Target
	if pct > 1 {
		return 1
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Remaining returns how much is left to reach the target, never negative.
func (p Pool) Remaining() float64 {
	if p.Raised >= p.Target {
		return 0
	}
	return p.Target - p.Raised
}

// Validate checks the pool invariants. It reports every problem found.
func (p Pool) Validate() error {
	var errs []error
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if n := utf8.RuneCountInString(p.Description); n > MaxDescriptionLength {
		errs = append(errs, fmt.Errorf("description too long (%d > %d)", n, MaxDescriptionLength))
	}
	if !p.Category.Valid() {
		errs = append(errs, fmt.Errorf("unknown category %q", string(p.Category)))
	}
	if !p.Status.Valid() {
		errs = append(errs, fmt.Errorf("unknown status %q", string(p.Status)))
	}
	if !finite(p.Target) || p.Target <= 0 {
		errs = append(errs, errors.New("target must be a positive number"))
	}
	if !finite(p.Raised) || p.Raised < 0 {
		errs = append(errs, errors.New("raised must be a non-negative number"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("pool %q: %w", p.ID, errors.Join(errs...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FindPool returns the pool with the given ID.
func FindPool(pools []Pool, id string) (Pool, bool) {
	for _, p := range pools {
		if p.ID == id {
			return p, true
		}
	}
	return Pool{}, false
}
