package seating

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"gorm.io/gorm"
)

type UpdateMessage struct {
	Event  string      `json:"event"`
	Tables []TableView `json:"tables"`
}

// Takılan bir izleyicinin yayını bekletebileceği azami süre.
const writeWait = 10 * time.Second

// viewerConn: hub'ın bir izleyiciden beklediği yüzey. *websocket.Conn bunu
// sağlar; testler sahte bağlantı kullanır.
type viewerConn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Hub: bağlı izleyicilere oturma planını yayınlar. Fan-out tek yönlüdür;
// yazamayan bağlantı kapatılır, diğerlerini bekletmez.
type Hub struct {
	clients    map[viewerConn]bool
	broadcast  chan []TableView
	register   chan viewerConn
	unregister chan viewerConn
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[viewerConn]bool),
		broadcast:  make(chan []TableView),
		register:   make(chan viewerConn),
		unregister: make(chan viewerConn),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case tables := <-h.broadcast:
			msg := UpdateMessage{Event: "seating:update", Tables: tables}
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("ws yazma hatası: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Broadcast(tables []TableView) {
	h.broadcast <- tables
}

// BroadcastSnapshot: mutasyon commit edildikten sonra çağrılır. Yayın HTTP
// yanıtını bekletmez; diff değil her zaman tam liste gönderilir.
func BroadcastSnapshot(db *gorm.DB, hub *Hub) {
	go func() {
		tables, err := Snapshot(db, time.Now())
		if err != nil {
			log.Printf("oturma planı yüklenemedi, yayın atlandı: %v", err)
			return
		}
		hub.Broadcast(tables)
	}()
}

// WSHandler: izleyici bağlantısı. Bağlanınca bir şey gönderilmez; istemci
// "seating:load" yazarsa sadece ona güncel plan döner.
func WSHandler(hub *Hub, db *gorm.DB) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		hub.register <- conn
		defer func() {
			hub.unregister <- conn
		}()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if string(msg) == "seating:load" {
				tables, err := Snapshot(db, time.Now())
				if err != nil {
					continue
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(UpdateMessage{Event: "seating:update", Tables: tables}); err != nil {
					return
				}
			}
		}
	}
}
