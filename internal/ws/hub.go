package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub раздает кадры раунда по подключениям пользователя.
// Один пользователь может держать несколько вкладок
type Hub struct {
	mtx      sync.RWMutex
	conns    map[int]map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[int]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Upgrade апгрейдит запрос и регистрирует подключение за пользователем.
// Читающая горутина живет до закрытия соединения клиентом
func (h *Hub) Upgrade(w http.ResponseWriter, r *http.Request, userID int) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.register(userID, conn)

	go func() {
		defer h.unregister(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

func (h *Hub) register(userID int, conn *websocket.Conn) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *Hub) unregister(userID int, conn *websocket.Conn) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	delete(h.conns[userID], conn)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
	_ = conn.Close()
}

// Send шлет payload всем подключениям пользователя.
// Мертвые соединения снимаются с регистрации
func (h *Hub) Send(userID int, payload any) {
	h.mtx.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns[userID]))
	for conn := range h.conns[userID] {
		conns = append(conns, conn)
	}
	h.mtx.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("ws send to user %d failed: %v", userID, err)
			h.unregister(userID, conn)
		}
	}
}
