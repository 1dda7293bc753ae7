package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
)

// Preset is a named, saved filter state.
type Preset struct {
	Name    string
	State   filter.State
	SavedAt time.Time
}

// SavePreset stores s under name, replacing any preset with that name.
func (c *Cache) SavePreset(name string, s filter.State) error {
	cats := make([]string, 0, len(model.Categories()))
	for _, cat := range s.SelectedCategories() {
		cats = append(cats, string(cat))
	}
	stats := make([]string, 0, len(model.Statuses()))
	for _, st := range s.SelectedStatuses() {
		stats = append(stats, string(st))
	}

	_, err := c.db.Exec(`INSERT OR REPLACE INTO filter_presets
		(name, query, categories, statuses, saved_at) VALUES (?, ?, ?, ?, ?)`,
		name, s.Query(), strings.Join(cats, ","), strings.Join(stats, ","),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// LoadPreset returns the preset saved under name.
func (c *Cache) LoadPreset(name string) (Preset, bool, error) {
	row := c.db.QueryRow(`SELECT name, query, categories, statuses, saved_at
		FROM filter_presets WHERE name = ?`, name)

	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, false, nil
	}
	if err != nil {
		return Preset{}, false, err
	}
	return p, true, nil
}

// ListPresets returns every preset ordered by name.
func (c *Cache) ListPresets() ([]Preset, error) {
	rows, err := c.db.Query(`SELECT name, query, categories, statuses, saved_at
		FROM filter_presets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeletePreset removes a preset. Deleting a missing preset is not an error.
func (c *Cache) DeletePreset(name string) error {
	_, err := c.db.Exec("DELETE FROM filter_presets WHERE name = ?", name)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (Preset, error) {
	var p Preset
	var query, cats, stats, savedAt string
	if err := row.Scan(&p.Name, &query, &cats, &stats, &savedAt); err != nil {
		return Preset{}, err
	}

	var categories []model.Category
	for _, name := range splitList(cats) {
		if c, err := model.ParseCategory(name); err == nil {
			categories = append(categories, c)
		}
	}
	var statuses []model.Status
	for _, name := range splitList(stats) {
		if s, err := model.ParseStatus(name); err == nil {
			statuses = append(statuses, s)
		}
	}

	p.State = filter.NewState(query, categories, statuses)
	p.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
	return p, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
