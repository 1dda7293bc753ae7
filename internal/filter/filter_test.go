package filter

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/givepool/givepool/internal/model"
	"github.com/givepool/givepool/internal/source"
)

func ids(pools []model.Pool) []string {
	out := make([]string, 0, len(pools))
	for _, p := range pools {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyExamples(t *testing.T) {
	pools := source.Seed()

	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{"empty state", State{}, []string{"1", "2", "3", "4", "5", "6"}},
		{"query ocean", State{}.SetQuery("ocean"), []string{"3"}},
		{"query matches description", State{}.SetQuery("PLASTIC"), []string{"3"}},
		{"health and completed", State{}.ToggleCategory(model.CategoryHealth).ToggleStatus(model.StatusCompleted), []string{"6"}},
		{"no match", State{}.SetQuery("zzz-nomatch"), []string{}},
		{"clear restores all", State{}.SetQuery("ocean").ToggleCategory(model.CategoryHealth).Clear(), []string{"1", "2", "3", "4", "5", "6"}},
		{"two categories", State{}.ToggleCategory(model.CategoryCommunity).ToggleCategory(model.CategoryEducation), []string{"2", "5"}},
		{"active only", State{}.ToggleStatus(model.StatusActive), []string{"1", "2", "3", "5"}},
		{"query and category", State{}.SetQuery("s").ToggleCategory(model.CategoryHealth), []string{"1", "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ids(Apply(pools, tt.state))); diff != "" {
				t.Fatalf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyIsOrderedSubsequence(t *testing.T) {
	pools := source.Seed()
	pos := make(map[string]int, len(pools))
	for i, p := range pools {
		pos[p.ID] = i
	}

	states := []State{
		{},
		State{}.SetQuery("e"),
		State{}.ToggleStatus(model.StatusActive),
		State{}.ToggleCategory(model.CategoryHealth).ToggleCategory(model.CategoryTechnology),
		State{}.SetQuery("WATER"),
		State{}.SetQuery("a").ToggleCategory(model.CategoryEducation).ToggleStatus(model.StatusActive),
		State{}.SetQuery("no such pool"),
	}
	for _, s := range states {
		last := -1
		got := make(map[string]bool)
		for _, p := range Apply(pools, s) {
			if pos[p.ID] <= last {
				t.Fatalf("state %v: %s out of order", s, p.ID)
			}
			last = pos[p.ID]
			got[p.ID] = true
		}
		for _, p := range pools {
			if want := wantMatch(p, s); got[p.ID] != want {
				t.Fatalf("state %v: %s returned = %v, want %v", s, p.ID, got[p.ID], want)
			}
		}
	}
}

// wantMatch restates the filter rules from the state's public accessors.
func wantMatch(p model.Pool, s State) bool {
	if q := strings.ToLower(s.Query()); q != "" &&
		!strings.Contains(strings.ToLower(p.Title), q) &&
		!strings.Contains(strings.ToLower(p.Description), q) {
		return false
	}
	if cats := s.SelectedCategories(); len(cats) > 0 && !slices.Contains(cats, p.Category) {
		return false
	}
	if stats := s.SelectedStatuses(); len(stats) > 0 && !slices.Contains(stats, p.Status) {
		return false
	}
	return true
}

func TestToggleIsSelfInverse(t *testing.T) {
	base := State{}.SetQuery("water").ToggleStatus(model.StatusActive)
	for _, c := range model.Categories() {
		if got := base.ToggleCategory(c).ToggleCategory(c); got != base {
			t.Errorf("ToggleCategory(%s) twice = %v, want %v", c, got, base)
		}
	}
	for _, st := range model.Statuses() {
		if got := base.ToggleStatus(st).ToggleStatus(st); got != base {
			t.Errorf("ToggleStatus(%s) twice = %v, want %v", st, got, base)
		}
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := State{}.SetQuery("ocean")
	before := s
	_ = s.ToggleCategory(model.CategoryHealth)
	_ = s.ToggleStatus(model.StatusCompleted)
	_ = s.SetQuery("other")
	_ = s.Clear()
	if s != before {
		t.Fatalf("receiver changed: %v, want %v", s, before)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := State{}.SetQuery("x").ToggleCategory(model.CategoryHealth).ToggleStatus(model.StatusActive)
	once := s.Clear()
	if once != once.Clear() {
		t.Fatal("Clear twice differs from Clear once")
	}
	if !once.IsEmpty() || once.HasSelections() {
		t.Fatalf("cleared state = %v, want empty", once)
	}
}

func TestUnknownValuesAreIgnored(t *testing.T) {
	s := State{}.ToggleCategory("Sports").ToggleStatus("Paused")
	if s != (State{}) {
		t.Fatalf("unknown toggles changed state: %v", s)
	}
}

func TestSelectionsAreCanonicalOrder(t *testing.T) {
	s := State{}.
		ToggleCategory(model.CategoryCommunity).
		ToggleCategory(model.CategoryEducation).
		ToggleStatus(model.StatusCompleted).
		ToggleStatus(model.StatusActive)

	wantCats := []model.Category{model.CategoryEducation, model.CategoryCommunity}
	if diff := cmp.Diff(wantCats, s.SelectedCategories()); diff != "" {
		t.Fatalf("SelectedCategories mismatch (-want +got):\n%s", diff)
	}
	wantStats := []model.Status{model.StatusActive, model.StatusCompleted}
	if diff := cmp.Diff(wantStats, s.SelectedStatuses()); diff != "" {
		t.Fatalf("SelectedStatuses mismatch (-want +got):\n%s", diff)
	}
}

func TestHasSelectionsIgnoresQuery(t *testing.T) {
	s := State{}.SetQuery("water")
	if s.HasSelections() {
		t.Fatal("HasSelections() = true for query only")
	}
	if s.IsEmpty() {
		t.Fatal("IsEmpty() = true with a query")
	}
}

func TestStateString(t *testing.T) {
	if got := (State{}).String(); got != "all pools" {
		t.Fatalf("String() = %q", got)
	}
	s := State{}.SetQuery("ocean").ToggleCategory(model.CategoryHealth).ToggleStatus(model.StatusActive)
	if got, want := s.String(), `"ocean" │ Health │ Active`; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNewStateBuildsSets(t *testing.T) {
	got := NewState("q", []model.Category{model.CategoryHealth, model.CategoryHealth, "Sports"}, []model.Status{model.StatusActive})
	want := State{}.SetQuery("q").ToggleCategory(model.CategoryHealth).ToggleStatus(model.StatusActive)
	if got != want {
		t.Fatalf("NewState = %v, want %v", got, want)
	}
}

func TestEnumSizesMatchModel(t *testing.T) {
	if numCategories != len(model.Categories()) {
		t.Fatalf("numCategories = %d, want %d", numCategories, len(model.Categories()))
	}
	if numStatuses != len(model.Statuses()) {
		t.Fatalf("numStatuses = %d, want %d", numStatuses, len(model.Statuses()))
	}
}
