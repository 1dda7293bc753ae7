package model

import (
	"fmt"
	"strings"
)

// Category is the closed set of pool categories.
type Category string

// Categories in their canonical display order.
const (
	CategoryEducation   Category = "Education"
	CategoryHealth      Category = "Health"
	CategoryEnvironment Category = "Environment"
	CategoryTechnology  Category = "Technology"
	CategoryCommunity   Category = "Community"
)

// Categories returns every category in canonical order.
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryHealth,
		CategoryEnvironment,
		CategoryTechnology,
		CategoryCommunity,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the canonical position of c, or -1.
func (c Category) Index() int {
	for i, known := range Categories() {
		if c == known {
			return i
		}
	}
	return -1
}

func (c Category) String() string { return string(c) }

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Status is the lifecycle state of a pool.
type Status string

// Statuses in their canonical display order.
const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// Statuses returns every status in canonical order.
func Statuses() []Status {
	return []Status{StatusActive, StatusCompleted}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s.Index() >= 0
}

// Index returns the canonical position of s, or -1.
func (s Status) Index() int {
	switch s {
	case StatusActive:
		return 0
	case StatusCompleted:
		return 1
	}
	return -1
}

func (s Status) String() string { return string(s) }

// ParseStatus matches a status name case-insensitively.
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for _, s := range Statuses() {
		if strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", v)
}

// Asset is a token a donation can be made in.
type Asset string

// Supported assets.
const (
	AssetXLM  Asset = "XLM"
	AssetUSDC Asset = "USDC"
)

// Assets returns every supported asset in display order.
func Assets() []Asset {
	return []Asset{AssetXLM, AssetUSDC}
}

// Valid reports whether a is a supported asset.
func (a Asset) Valid() bool {
	switch a {
	case AssetXLM, AssetUSDC:
		return true
	}
	return false
}

func (a Asset) String() string { return string(a) }

// ParseAsset matches an asset code case-insensitively.
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	for _, a := range Assets() {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown asset %q", s)
}
