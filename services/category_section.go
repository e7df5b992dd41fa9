package services

// SectionState is the lifecycle of one rendered category section.
type SectionState int

const (
	SectionUninitialized SectionState = iota
	SectionLoadingInitial
	SectionIdleWithMore
	SectionIdleComplete
	SectionLoadingMore
)

func (s SectionState) String() string {
	switch s {
	case SectionUninitialized:
		return "uninitialized"
	case SectionLoadingInitial:
		return "loading-initial"
	case SectionIdleWithMore:
		return "idle-with-more"
	case SectionIdleComplete:
		return "idle-complete"
	case SectionLoadingMore:
		return "loading-more"
	default:
		return "unknown"
	}
}

// CategorySection drives pagination for one category against the menu
// store. Load-more is triggered either explicitly or by the sentinel
// element entering the viewport; both paths go through LoadMore, and
// triggers arriving while a fetch is in flight are dropped here before
// the store-level guard even sees them.
type CategorySection struct {
	store    *MenuStore
	restID   uint
	category string
	settings PaginationSettings
	state    SectionState
}

func NewCategorySection(store *MenuStore, restID uint, category string, settings PaginationSettings) *CategorySection {
	return &CategorySection{
		store:    store,
		restID:   restID,
		category: category,
		settings: settings,
	}
}

func (cs *CategorySection) State() SectionState { return cs.state }

// SetSettings swaps the breakpoint settings, e.g. after a resize. Only
// subsequent fetches use the new limits.
func (cs *CategorySection) SetSettings(settings PaginationSettings) {
	cs.settings = settings
}

// EnsureLoaded performs the initial page fetch exactly once.
func (cs *CategorySection) EnsureLoaded() error {
	if cs.state != SectionUninitialized {
		return nil
	}
	cs.state = SectionLoadingInitial
	_, err := cs.store.FetchCategoryPage(cs.restID, cs.category, 1, cs.settings.InitialLimit)
	cs.settle(err)
	return err
}

// LoadMore fetches the next page. Triggers while loading or after the
// window is complete are no-ops.
func (cs *CategorySection) LoadMore() error {
	if cs.state != SectionIdleWithMore {
		return nil
	}
	cs.state = SectionLoadingMore
	err := cs.store.LoadMoreCategory(cs.restID, cs.category, cs.settings.LoadMoreLimit)
	cs.settle(err)
	return err
}

// ObserveSentinel feeds a viewport-visibility measurement of the
// section's sentinel element and loads more when it intersects.
func (cs *CategorySection) ObserveSentinel(m SentinelMeasurement) error {
	if !m.Intersects(cs.settings.RootMargin, cs.settings.Threshold) {
		return nil
	}
	return cs.LoadMore()
}

func (cs *CategorySection) settle(err error) {
	if err != nil {
		// stay retryable: a failed page can be requested again
		cs.state = SectionIdleWithMore
		return
	}
	if win, ok := cs.store.Window(cs.category); ok && win.HasMore {
		cs.state = SectionIdleWithMore
	} else {
		cs.state = SectionIdleComplete
	}
}

// SentinelMeasurement is one observation of the sentinel's box against
// the viewport, in px. Top is relative to the viewport's top edge.
type SentinelMeasurement struct {
	Top            int
	Height         int
	ViewportHeight int
}

// Intersects reports whether the sentinel is inside the viewport grown
// by rootMargin on both ends, with at least threshold of its height
// visible within that expanded box.
func (m SentinelMeasurement) Intersects(rootMargin int, threshold float64) bool {
	if m.Height <= 0 {
		return false
	}
	top := m.Top
	bottom := m.Top + m.Height
	boxTop := -rootMargin
	boxBottom := m.ViewportHeight + rootMargin

	visTop := top
	if visTop < boxTop {
		visTop = boxTop
	}
	visBottom := bottom
	if visBottom > boxBottom {
		visBottom = boxBottom
	}
	visible := visBottom - visTop
	if visible <= 0 {
		return false
	}
	return float64(visible) >= threshold*float64(m.Height)
}
