package model

import (
	"math"
	"strings"
	"testing"
)

func validPool() Pool {
	return Pool{
		ID:          "1",
		Title:       "Clean Water Initiative",
		Description: "Providing clean drinking water to communities in need.",
		Category:    CategoryHealth,
		Status:      StatusActive,
		Target:      50000,
		Raised:      12500,
		Color:       "blue",
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name           string
		target, raised float64
		want           float64
	}{
		{"quarter", 50000, 12500, 0.25},
		{"exact", 40000, 40000, 1},
		{"over target is capped", 100, 250, 1},
		{"nothing raised", 100, 0, 0},
		{"zero target", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pool{Target: tt.target, Raised: tt.raised}
			if got := p.Progress(); got != tt.want {
				t.Fatalf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	if got := validPool().Remaining(); got != 37500 {
		t.Fatalf("Remaining() = %v, want 37500", got)
	}
	if got := (Pool{Target: 10, Raised: 30}).Remaining(); got != 0 {
		t.Fatalf("Remaining() over target = %v, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	if err := validPool().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Pool)
		want   string
	}{
		{"missing title", func(p *Pool) { p.Title = " " }, "title is required"},
		{"long description", func(p *Pool) { p.Description = strings.Repeat("x", MaxDescriptionLength+1) }, "description too long"},
		{"bad category", func(p *Pool) { p.Category = "Sports" }, `unknown category "Sports"`},
		{"bad status", func(p *Pool) { p.Status = "Paused" }, `unknown status "Paused"`},
		{"zero target", func(p *Pool) { p.Target = 0 }, "target must be a positive number"},
		{"nan target", func(p *Pool) { p.Target = math.NaN() }, "target must be a positive number"},
		{"inf target", func(p *Pool) { p.Target = math.Inf(1) }, "target must be a positive number"},
		{"negative raised", func(p *Pool) { p.Raised = -1 }, "raised must be a non-negative number"},
		{"nan raised", func(p *Pool) { p.Raised = math.NaN() }, "raised must be a non-negative number"},
		{"inf raised", func(p *Pool) { p.Raised = math.Inf(1) }, "raised must be a non-negative number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPool()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.Contains(err.Error(), `pool "1"`) {
				t.Fatalf("Validate() = %q, want it to mention %q and the pool id", err, tt.want)
			}
		})
	}
}

func TestValidateDescriptionCountsCharacters(t *testing.T) {
	p := validPool()
	p.Description = strings.Repeat("é", MaxDescriptionLength)
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v for %d multi-byte characters", err, MaxDescriptionLength)
	}
}

func TestFindPool(t *testing.T) {
	pools := []Pool{validPool(), {ID: "2", Title: "Other"}}
	p, ok := FindPool(pools, "2")
	if !ok || p.Title != "Other" {
		t.Fatalf("FindPool(2) = %+v, %v", p, ok)
	}
	if _, ok := FindPool(pools, "9"); ok {
		t.Fatal("FindPool(9) found a pool")
	}
}
