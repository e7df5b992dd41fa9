package services

import (
	"testing"

	"github.com/Saaaaaad3/Plattera/entity"
)

func newTestSection(t *testing.T, total int, settings PaginationSettings) *CategorySection {
	t.Helper()
	store, _ := newTestStore(map[uint][]entity.MenuItem{1: starters(1, total)})
	if err := store.FetchAll(1); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	return NewCategorySection(store, 1, "starters", settings)
}

func TestSectionLifecycle(t *testing.T) {
	cs := newTestSection(t, 23, BaseSettings())

	if cs.State() != SectionUninitialized {
		t.Fatalf("initial state = %v", cs.State())
	}
	if err := cs.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if cs.State() != SectionIdleWithMore {
		t.Fatalf("after initial load: state = %v, want idle-with-more", cs.State())
	}

	// second EnsureLoaded is a no-op
	if err := cs.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded again: %v", err)
	}

	if err := cs.LoadMore(); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if cs.State() != SectionIdleWithMore {
		t.Fatalf("after page 2: state = %v, want idle-with-more", cs.State())
	}
	if err := cs.LoadMore(); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if cs.State() != SectionIdleComplete {
		t.Fatalf("after page 3: state = %v, want idle-complete", cs.State())
	}

	// complete sections ignore further triggers
	if err := cs.LoadMore(); err != nil {
		t.Fatalf("LoadMore when complete: %v", err)
	}
}

func TestSectionSmallCategoryCompletesImmediately(t *testing.T) {
	cs := newTestSection(t, 4, BaseSettings())
	if err := cs.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if cs.State() != SectionIdleComplete {
		t.Errorf("state = %v, want idle-complete", cs.State())
	}
}

func TestSectionLoadMoreBeforeInit(t *testing.T) {
	cs := newTestSection(t, 23, BaseSettings())
	if err := cs.LoadMore(); err != nil {
		t.Fatalf("LoadMore before init: %v", err)
	}
	if cs.State() != SectionUninitialized {
		t.Errorf("state = %v, want uninitialized", cs.State())
	}
}

func TestSectionSentinelTrigger(t *testing.T) {
	cs := newTestSection(t, 23, BaseSettings())
	if err := cs.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}

	// sentinel far below the fold: nothing happens
	far := SentinelMeasurement{Top: 2000, Height: 20, ViewportHeight: 800}
	if err := cs.ObserveSentinel(far); err != nil {
		t.Fatalf("ObserveSentinel: %v", err)
	}
	if win, _ := cs.store.Window("starters"); win.Page != 1 {
		t.Fatalf("off-screen sentinel advanced to page %d", win.Page)
	}

	// sentinel within the 100px margin: loads the next page
	near := SentinelMeasurement{Top: 850, Height: 20, ViewportHeight: 800}
	if err := cs.ObserveSentinel(near); err != nil {
		t.Fatalf("ObserveSentinel: %v", err)
	}
	if win, _ := cs.store.Window("starters"); win.Page != 2 {
		t.Errorf("in-margin sentinel did not load page 2, page = %d", win.Page)
	}
}

func TestSentinelIntersects(t *testing.T) {
	tests := []struct {
		name       string
		m          SentinelMeasurement
		rootMargin int
		threshold  float64
		want       bool
	}{
		{"inside viewport", SentinelMeasurement{Top: 400, Height: 20, ViewportHeight: 800}, 100, 0.1, true},
		{"just below margin", SentinelMeasurement{Top: 901, Height: 20, ViewportHeight: 800}, 100, 0.1, false},
		{"within margin", SentinelMeasurement{Top: 880, Height: 20, ViewportHeight: 800}, 100, 0.1, true},
		{"above viewport past margin", SentinelMeasurement{Top: -200, Height: 20, ViewportHeight: 800}, 100, 0.1, false},
		{"zero height", SentinelMeasurement{Top: 400, Height: 0, ViewportHeight: 800}, 100, 0.1, false},
		{"wider margin catches it", SentinelMeasurement{Top: 920, Height: 20, ViewportHeight: 800}, 150, 0.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Intersects(tt.rootMargin, tt.threshold); got != tt.want {
				t.Errorf("Intersects(%d, %v) = %v, want %v", tt.rootMargin, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestSectionBreakpointChangeAffectsNextFetchOnly(t *testing.T) {
	cs := newTestSection(t, 30, SettingsFor(BreakpointMobile)) // pages of 8
	if err := cs.EnsureLoaded(); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	win, _ := cs.store.Window("starters")
	if len(win.Items) != 8 {
		t.Fatalf("initial mobile page = %d items, want 8", len(win.Items))
	}

	cs.SetSettings(SettingsFor(BreakpointDesktop)) // pages of 15
	if err := cs.LoadMore(); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	win, _ = cs.store.Window("starters")
	if len(win.Items) != 8+15 {
		t.Errorf("window = %d items after resize, want 23 (8 kept + 15 new)", len(win.Items))
	}
}
