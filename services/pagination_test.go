package services

import "testing"

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		width int
		want  Breakpoint
	}{
		{320, BreakpointMobile},
		{767, BreakpointMobile},
		{768, BreakpointTablet},
		{1023, BreakpointTablet},
		{1024, BreakpointDesktop},
		{1920, BreakpointDesktop},
	}
	for _, tt := range tests {
		if got := BreakpointFor(tt.width); got != tt.want {
			t.Errorf("BreakpointFor(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestSettingsFor(t *testing.T) {
	tests := []struct {
		bp         Breakpoint
		limit      int
		rootMargin int
	}{
		{BreakpointMobile, 8, 50},
		{BreakpointTablet, 12, 100},
		{BreakpointDesktop, 15, 150},
	}
	for _, tt := range tests {
		s := SettingsFor(tt.bp)
		if s.InitialLimit != tt.limit || s.LoadMoreLimit != tt.limit {
			t.Errorf("%v: limits = %d/%d, want %d", tt.bp, s.InitialLimit, s.LoadMoreLimit, tt.limit)
		}
		if s.RootMargin != tt.rootMargin {
			t.Errorf("%v: rootMargin = %d, want %d", tt.bp, s.RootMargin, tt.rootMargin)
		}
	}
}
