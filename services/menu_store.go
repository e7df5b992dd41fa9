package services

import (
	"errors"
	"sync"
	"time"

	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/Saaaaaad3/Plattera/utils"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidItem        = errors.New("invalid menu item data")
	ErrCannotReachServer  = errors.New("cannot reach server")
)

// MenuSource loads the full item list for a restaurant.
type MenuSource interface {
	ItemsByRestaurant(restID uint) ([]entity.MenuItem, error)
}

// MenuWriter persists item mutations. Items are addressed by their
// restaurant-scoped menu number, never by a storage key. A nil writer
// makes the store a pure in-memory cache (demo mode, tests).
type MenuWriter interface {
	CreateItem(item *entity.MenuItem) error
	SaveItem(item *entity.MenuItem) error
	DeleteItem(restID, number uint) error
}

// CategoryWindow is the cached, possibly partial, ordered slice of one
// category. Items is append-only across pages; page 1 replaces it.
type CategoryWindow struct {
	Items      []entity.MenuItem
	HasMore    bool
	IsLoading  bool
	Page       int
	TotalItems int
}

// MenuStore is the single source of truth for the menu of the active
// restaurant: the flat item list plus one pagination window per
// category. Mutations are optimistic: the windows are patched in place
// after a successful write, without a confirming refetch.
//
// All state lives behind one mutex; fetch and persistence IO happen
// outside it. Per-category IsLoading flags serialize page N+1 behind
// page N within a category, nothing serializes across categories.
// Readers pass the restaurant id they expect so a concurrent switch
// to another restaurant can never hand them the wrong menu.
type MenuStore struct {
	mu sync.Mutex

	source MenuSource
	writer MenuWriter
	delay  time.Duration // simulated backend latency, 0 in tests

	restID     uint
	items      []entity.MenuItem
	loading    bool
	lastErr    string
	pagination map[string]*CategoryWindow

	// reserved holds menu numbers handed to adds still persisting, so
	// concurrent adds never pick the same number.
	reserved map[uint]bool

	// generation is bumped on every fetch trigger; a result whose
	// generation is no longer current is dropped instead of committed,
	// so a restaurant switch cannot be overwritten by a stale fetch.
	generation uint64
}

func NewMenuStore(source MenuSource, writer MenuWriter, delay time.Duration) *MenuStore {
	return &MenuStore{
		source:     source,
		writer:     writer,
		delay:      delay,
		pagination: make(map[string]*CategoryWindow),
		reserved:   make(map[uint]bool),
	}
}

func (s *MenuStore) sleep() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// FetchAll loads the item list for restID. It is a no-op when the store
// already holds items for that restaurant; cache validity is keyed by
// restaurant id, not by freshness.
func (s *MenuStore) FetchAll(restID uint) error {
	s.mu.Lock()
	if len(s.items) > 0 && s.restID == restID {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.lastErr = ""
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.sleep()
	items, err := s.source.ItemsByRestaurant(restID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// superseded by a later fetch, drop the result
		return nil
	}
	s.loading = false
	if err != nil {
		s.lastErr = ErrCannotReachServer.Error()
		return ErrCannotReachServer
	}
	if len(items) == 0 {
		s.lastErr = ErrRestaurantNotFound.Error()
		return ErrRestaurantNotFound
	}
	s.restID = restID
	s.items = items
	s.pagination = make(map[string]*CategoryWindow)
	return nil
}

// FetchCategoryPage computes one page window over the cached items of
// (restID, category) and returns a snapshot of the cumulative window
// it committed. Page 1 replaces the category's window, later pages
// append to it; the caller must not request the same page twice.
// TotalItems is re-derived from the flat list on every call. Items
// cached for a different restaurant never leak into the result: the
// window is then computed over an empty list.
func (s *MenuStore) FetchCategoryPage(restID uint, category string, page, limit int) (CategoryWindow, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = BaseSettings().InitialLimit
	}

	s.sleep()

	s.mu.Lock()
	defer s.mu.Unlock()

	var all []entity.MenuItem
	for _, it := range s.items {
		if it.RestaurantID == restID && it.Category == category {
			all = append(all, it)
		}
	}

	total := len(all)
	offset := (page - 1) * limit
	end := offset + limit

	var pageItems []entity.MenuItem
	if offset < total {
		clamped := end
		if clamped > total {
			clamped = total
		}
		pageItems = append(pageItems, all[offset:clamped]...)
	}

	win := s.pagination[category]
	if win == nil {
		win = &CategoryWindow{}
		s.pagination[category] = win
	}
	if page == 1 {
		win.Items = pageItems
	} else {
		win.Items = append(win.Items, pageItems...)
	}
	win.HasMore = end < total
	win.IsLoading = false
	win.Page = page
	win.TotalItems = total

	out := *win
	out.Items = make([]entity.MenuItem, len(win.Items))
	copy(out.Items, win.Items)
	return out, nil
}

// LoadMoreCategory fetches the next page for a category. Silently
// returns when the category was never paginated, a fetch is already in
// flight for it, or there is nothing left to load.
func (s *MenuStore) LoadMoreCategory(restID uint, category string, limit int) error {
	s.mu.Lock()
	win := s.pagination[category]
	if win == nil || win.IsLoading || !win.HasMore {
		s.mu.Unlock()
		return nil
	}
	win.IsLoading = true
	page := win.Page + 1
	s.mu.Unlock()

	_, err := s.FetchCategoryPage(restID, category, page, limit)
	return err
}

// UpdateItem validates, persists and patches an item in place. The
// flat list is patched by menu number; of the windows only the one
// keyed by the item's current category is patched, so moving an item
// between categories leaves a stale copy in the old category's window
// until that window is refetched at page 1.
func (s *MenuStore) UpdateItem(restID uint, item entity.MenuItem) error {
	if err := s.validate(item, false); err != nil {
		return err
	}
	item.RestaurantID = restID

	s.sleep()
	if s.writer != nil {
		if err := s.writer.SaveItem(&item); err != nil {
			s.setErr(ErrCannotReachServer)
			return ErrCannotReachServer
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ItemNumber == item.ItemNumber {
			s.items[i] = item
		}
	}
	if win, ok := s.pagination[item.Category]; ok {
		for i := range win.Items {
			if win.Items[i].ItemNumber == item.ItemNumber {
				win.Items[i] = item
			}
		}
	}
	return nil
}

// DeleteItem removes an item from the flat list and from every window.
// Every window's TotalItems is decremented whether or not the item had
// been paged into it, which can under-count until the next page-1
// fetch re-derives the total.
func (s *MenuStore) DeleteItem(restID, number uint) error {
	s.sleep()
	if s.writer != nil {
		if err := s.writer.DeleteItem(restID, number); err != nil {
			s.setErr(ErrCannotReachServer)
			return ErrCannotReachServer
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ItemNumber != number {
			kept = append(kept, it)
		}
	}
	s.items = kept

	for _, win := range s.pagination {
		keptWin := win.Items[:0]
		for _, it := range win.Items {
			if it.ItemNumber != number {
				keptWin = append(keptWin, it)
			}
		}
		win.Items = keptWin
		if win.TotalItems > 0 {
			win.TotalItems--
		}
	}
	return nil
}

// AddItem assigns the next menu number (max existing + 1), stamps the
// restaurant id, persists and appends. When the item's category has a
// window already the item is prepended to it; when it does not, the
// item stays invisible until that category is paginated for the first
// time.
func (s *MenuStore) AddItem(restID uint, item entity.MenuItem) (*entity.MenuItem, error) {
	if err := s.validate(item, true); err != nil {
		return nil, err
	}

	s.sleep()

	s.mu.Lock()
	num := s.nextItemNumber()
	s.reserved[num] = true
	s.mu.Unlock()

	item.ItemNumber = num
	item.RestaurantID = restID

	if s.writer != nil {
		if err := s.writer.CreateItem(&item); err != nil {
			s.mu.Lock()
			delete(s.reserved, num)
			s.lastErr = ErrCannotReachServer.Error()
			s.mu.Unlock()
			return nil, ErrCannotReachServer
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reserved, num)
	s.items = append(s.items, item)
	if win, ok := s.pagination[item.Category]; ok {
		win.Items = append([]entity.MenuItem{item}, win.Items...)
		win.TotalItems++
	}
	return &item, nil
}

// nextItemNumber is max+1 over the cached list and any numbers held by
// adds still persisting. Caller holds s.mu.
func (s *MenuStore) nextItemNumber() uint {
	var max uint
	for _, it := range s.items {
		if it.ItemNumber > max {
			max = it.ItemNumber
		}
	}
	for n := range s.reserved {
		if n > max {
			max = n
		}
	}
	return max + 1
}

// validate enforces the item invariants: name and price present,
// category present on create, price a non-negative decimal, spice and
// sweetness levels in [0,5]. Runs before any write.
func (s *MenuStore) validate(item entity.MenuItem, requireCategory bool) error {
	if item.ItemName == "" || item.ItemPrice == "" {
		s.setErr(ErrInvalidItem)
		return ErrInvalidItem
	}
	if requireCategory && item.Category == "" {
		s.setErr(ErrInvalidItem)
		return ErrInvalidItem
	}
	if _, err := utils.ParsePrice(item.ItemPrice); err != nil {
		s.setErr(ErrInvalidItem)
		return ErrInvalidItem
	}
	if item.ItemSpiceLevel < 0 || item.ItemSpiceLevel > 5 ||
		item.ItemSweetLevel < 0 || item.ItemSweetLevel > 5 {
		s.setErr(ErrInvalidItem)
		return ErrInvalidItem
	}
	return nil
}

func (s *MenuStore) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}

// ItemsFor returns a copy of the cached items belonging to restID.
// Empty when the store holds another restaurant's menu, so a reader
// racing a restaurant switch gets nothing rather than the wrong menu.
func (s *MenuStore) ItemsFor(restID uint) []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.MenuItem
	for _, it := range s.items {
		if it.RestaurantID == restID {
			out = append(out, it)
		}
	}
	return out
}

// Item looks an item of one restaurant up by its menu number.
func (s *MenuStore) Item(restID, number uint) (entity.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.RestaurantID == restID && it.ItemNumber == number {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

// Window returns a copy of one category's pagination state.
func (s *MenuStore) Window(category string) (CategoryWindow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	win, ok := s.pagination[category]
	if !ok {
		return CategoryWindow{}, false
	}
	out := *win
	out.Items = make([]entity.MenuItem, len(win.Items))
	copy(out.Items, win.Items)
	return out, true
}

func (s *MenuStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MenuStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
