package components

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		pos := 0
		for i := range Tabs {
			w := TabVisualWidth(i, active)
			if got := TabAtX(pos+w/2, active); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + tabGap
		}
		if got := TabAtX(pos+50, active); got != -1 {
			t.Fatalf("active=%d past end -> tab=%d, want -1", active, got)
		}
	}
}

func TestTabVisualWidth(t *testing.T) {
	// Active tabs render the bare name with one cell of padding per side.
	if got, want := TabVisualWidth(0, 0), len("Home")+2; got != want {
		t.Fatalf("active Home width = %d, want %d", got, want)
	}
	// Inactive tabs bracket the shortcut key.
	if got, want := TabVisualWidth(0, 1), len("[H]ome")+2; got != want {
		t.Fatalf("inactive Home width = %d, want %d", got, want)
	}
	if got, want := TabVisualWidth(3, 0), len("Settings[x]")+2; got != want {
		t.Fatalf("inactive Settings width = %d, want %d", got, want)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
