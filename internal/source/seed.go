package source

import (
	"context"

	"github.com/givepool/givepool/internal/model"
)

var seedPools = []model.Pool{
	{
		ID:          "1",
		Title:       "Clean Water Initiative",
		Description: "Providing clean drinking water to communities in need.",
		Category:    model.CategoryHealth,
		Status:      model.StatusActive,
		Target:      50000,
		Raised:      12500,
		Color:       "blue",
	},
	{
		ID:          "2",
		Title:       "Tech Education for Kids",
		Description: "Coding bootcamps and laptops for underprivileged students.",
		Category:    model.CategoryEducation,
		Status:      model.StatusActive,
		Target:      25000,
		Raised:      20000,
		Color:       "purple",
	},
	{
		ID:          "3",
		Title:       "Ocean Cleanup Project",
		Description: "Removing plastic waste from coastal areas and beaches.",
		Category:    model.CategoryEnvironment,
		Status:      model.StatusActive,
		Target:      100000,
		Raised:      85000,
		Color:       "teal",
	},
	{
		ID:          "4",
		Title:       "Community Solar Power",
		Description: "Installing solar panels for low-income neighborhoods.",
		Category:    model.CategoryTechnology,
		Status:      model.StatusCompleted,
		Target:      40000,
		Raised:      40000,
		Color:       "yellow",
	},
	{
		ID:          "5",
		Title:       "Local Food Bank Support",
		Description: "Stocking up local food banks for the winter season.",
		Category:    model.CategoryCommunity,
		Status:      model.StatusActive,
		Target:      15000,
		Raised:      5000,
		Color:       "green",
	},
	{
		ID:          "6",
		Title:       "Medical Supplies Drive",
		Description: "Emergency medical supplies for disaster relief.",
		Category:    model.CategoryHealth,
		Status:      model.StatusCompleted,
		Target:      30000,
		Raised:      30000,
		Color:       "red",
	},
}

// Seed returns a fresh copy of the built-in pools.
func Seed() []model.Pool {
	out := make([]model.Pool, len(seedPools))
	copy(out, seedPools)
	return out
}

// SeedSource serves the built-in pools.
type SeedSource struct{}

// Name implements Source.
func (SeedSource) Name() string { return "built-in" }

// Pools implements Source.
func (SeedSource) Pools(_ context.Context) ([]model.Pool, error) {
	return Seed(), nil
}
