package store

import (
	"testing"

	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
)

func TestPresetRoundTrip(t *testing.T) {
	c := openTestCache(t)

	s := filter.NewState("ocean",
		[]model.Category{model.CategoryHealth, model.CategoryEnvironment},
		[]model.Status{model.StatusCompleted})
	if err := c.SavePreset("mine", s); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}

	p, ok, err := c.LoadPreset("mine")
	if err != nil || !ok {
		t.Fatalf("LoadPreset = %v, %v", ok, err)
	}
	if p.State != s {
		t.Fatalf("State = %v, want %v", p.State, s)
	}
	if p.SavedAt.IsZero() {
		t.Fatal("SavedAt not set")
	}
}

func TestLoadPresetMissing(t *testing.T) {
	c := openTestCache(t)
	_, ok, err := c.LoadPreset("nope")
	if err != nil || ok {
		t.Fatalf("LoadPreset(missing) = %v, %v, want false, nil", ok, err)
	}
}

func TestSavePresetReplaces(t *testing.T) {
	c := openTestCache(t)

	first := filter.State{}.SetQuery("water")
	second := filter.State{}.ToggleStatus(model.StatusActive)
	if err := c.SavePreset("p", first); err != nil {
		t.Fatal(err)
	}
	if err := c.SavePreset("p", second); err != nil {
		t.Fatal(err)
	}

	p, _, err := c.LoadPreset("p")
	if err != nil {
		t.Fatal(err)
	}
	if p.State != second {
		t.Fatalf("State = %v, want %v", p.State, second)
	}
}

func TestListAndDeletePresets(t *testing.T) {
	c := openTestCache(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := c.SavePreset(name, filter.State{}.SetQuery(name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.DeletePreset("mid"); err != nil {
		t.Fatal(err)
	}
	if err := c.DeletePreset("never-existed"); err != nil {
		t.Fatalf("DeletePreset(missing) = %v", err)
	}

	presets, err := c.ListPresets()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range presets {
		names = append(names, p.Name)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("ListPresets names = %v, want [alpha zeta]", names)
	}
	if presets[0].State.Query() != "alpha" {
		t.Fatalf("alpha query = %q", presets[0].State.Query())
	}
}
