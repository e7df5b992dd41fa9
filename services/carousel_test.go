package services

import "testing"

func TestCarouselWraparound(t *testing.T) {
	const n = 4
	c := NewCarousel(n)

	for i := 0; i < n; i++ {
		if c.Index() != i {
			t.Fatalf("after %d next: index = %d, want %d", i, c.Index(), i)
		}
		c.Next()
	}
	if c.Index() != 0 {
		t.Errorf("after %d nexts: index = %d, want 0", n, c.Index())
	}

	c.Prev()
	if c.Index() != n-1 {
		t.Errorf("prev from 0: index = %d, want %d", c.Index(), n-1)
	}
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(0)
	c.Next()
	c.Prev()
	if c.Index() != 0 {
		t.Errorf("index = %d on empty carousel, want 0", c.Index())
	}
}

func TestCarouselSwipeThreshold(t *testing.T) {
	tests := []struct {
		name      string
		startX    int
		endX      int
		wantIndex int
	}{
		{"long left swipe advances", 200, 120, 1},
		{"long right swipe retreats", 120, 200, 2},
		{"short left drag is a tap", 200, 170, 0},
		{"short right drag is a tap", 170, 200, 0},
		{"exactly threshold is a tap", 150, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCarousel(3)
			c.TouchStart(tt.startX)
			c.TouchMove(tt.endX)
			c.TouchEnd()
			if c.Index() != tt.wantIndex {
				t.Errorf("index = %d, want %d", c.Index(), tt.wantIndex)
			}
		})
	}
}

func TestCarouselSwipeWithoutMove(t *testing.T) {
	c := NewCarousel(3)
	c.TouchStart(100)
	c.TouchEnd()
	if c.Index() != 0 {
		t.Errorf("index = %d after touch without move, want 0", c.Index())
	}
}

func TestCarouselModalEscape(t *testing.T) {
	c := NewCarousel(3)
	c.OpenModal()
	if !c.ModalOpen() {
		t.Fatal("modal did not open")
	}
	c.HandleKey("a")
	if !c.ModalOpen() {
		t.Error("non-escape key closed the modal")
	}
	c.HandleKey("Escape")
	if c.ModalOpen() {
		t.Error("escape did not close the modal")
	}
}
