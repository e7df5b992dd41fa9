package services

// Breakpoint buckets a viewport width the way the menu UI does:
// below 768px is mobile, below 1024px tablet, everything else desktop.
type Breakpoint int

const (
	BreakpointMobile Breakpoint = iota
	BreakpointTablet
	BreakpointDesktop
)

// PaginationSettings carries the page sizes and the sentinel trigger
// tuning for one breakpoint. Changing breakpoint only affects the size
// of the next page fetched, never already-fetched windows.
type PaginationSettings struct {
	InitialLimit  int
	LoadMoreLimit int
	RootMargin    int     // px before the viewport edge at which loading starts
	Threshold     float64 // fraction of the sentinel that must be visible
}

func BreakpointFor(width int) Breakpoint {
	switch {
	case width < 768:
		return BreakpointMobile
	case width < 1024:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}

func BaseSettings() PaginationSettings {
	return PaginationSettings{
		InitialLimit:  10,
		LoadMoreLimit: 10,
		RootMargin:    100,
		Threshold:     0.1,
	}
}

func SettingsFor(bp Breakpoint) PaginationSettings {
	s := BaseSettings()
	switch bp {
	case BreakpointMobile:
		s.InitialLimit = 8
		s.LoadMoreLimit = 8
		s.RootMargin = 50
	case BreakpointTablet:
		s.InitialLimit = 12
		s.LoadMoreLimit = 12
	case BreakpointDesktop:
		s.InitialLimit = 15
		s.LoadMoreLimit = 15
		s.RootMargin = 150
	}
	return s
}
