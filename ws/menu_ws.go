package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Saaaaaad3/Plattera/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	EventItemAdded   = "item_added"
	EventItemUpdated = "item_updated"
	EventItemDeleted = "item_deleted"
)

// MenuEvent is one menu mutation pushed to everyone viewing the
// restaurant's menu.
type MenuEvent struct {
	Type         string           `json:"type"`
	RestaurantID uint             `json:"restId"`
	Item         *entity.MenuItem `json:"item"`
}

// MenuHub fans menu mutation events out to websocket viewers, one set
// of connections per restaurant.
type MenuHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of viewers
	broadcast  chan MenuEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

func NewMenuHub() *MenuHub {
	return &MenuHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan MenuEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run listens for register/unregister/broadcast until the process
// exits. Start it in its own goroutine.
func (h *MenuHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify queues one mutation event for broadcast.
func (h *MenuHub) Notify(restID uint, eventType string, item *entity.MenuItem) {
	h.broadcast <- MenuEvent{Type: eventType, RestaurantID: restID, Item: item}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/restaurants/:id/menu
func (h *MenuHub) HandleWebSocket(c *gin.Context) {
	restID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad restaurant id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: uint(restID)}
	h.register <- sub

	// viewers only receive; drain reads until the peer goes away
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
