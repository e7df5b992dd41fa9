package services

// minSwipeDistance is the horizontal drag in px below which a gesture
// is treated as a tap, not a swipe.
const minSwipeDistance = 50

// Carousel is the image state of a food item detail view: an index
// into an ordered image list with wraparound navigation, plus a modal
// overlay sharing the same index and adding swipe handling.
type Carousel struct {
	count     int
	index     int
	modalOpen bool

	touchStartX *int
	touchEndX   *int
}

func NewCarousel(imageCount int) *Carousel {
	return &Carousel{count: imageCount}
}

func (c *Carousel) Index() int      { return c.index }
func (c *Carousel) ModalOpen() bool { return c.modalOpen }

// Next advances the index, wrapping past the last image.
func (c *Carousel) Next() {
	if c.count == 0 {
		return
	}
	c.index = (c.index + 1) % c.count
}

// Prev retreats the index, wrapping before the first image.
func (c *Carousel) Prev() {
	if c.count == 0 {
		return
	}
	c.index = (c.index - 1 + c.count) % c.count
}

func (c *Carousel) OpenModal()  { c.modalOpen = true }
func (c *Carousel) CloseModal() { c.modalOpen = false }

// HandleKey processes a keyboard event; Escape closes the modal.
func (c *Carousel) HandleKey(key string) {
	if key == "Escape" {
		c.modalOpen = false
	}
}

// TouchStart begins a swipe at x and clears any previous end position.
func (c *Carousel) TouchStart(x int) {
	c.touchEndX = nil
	c.touchStartX = &x
}

// TouchMove records the latest finger position.
func (c *Carousel) TouchMove(x int) {
	c.touchEndX = &x
}

// TouchEnd resolves the gesture: a leftward drag longer than the
// threshold advances, a rightward one retreats, anything shorter is a
// no-op. Touch positions are reset either way.
func (c *Carousel) TouchEnd() {
	defer func() {
		c.touchStartX = nil
		c.touchEndX = nil
	}()
	if c.touchStartX == nil || c.touchEndX == nil {
		return
	}
	distance := *c.touchStartX - *c.touchEndX
	switch {
	case distance > minSwipeDistance:
		c.Next()
	case distance < -minSwipeDistance:
		c.Prev()
	}
}
