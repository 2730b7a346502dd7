package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub quản lý các phòng lớp học theo unitID. Mọi event annotation
// (nét vẽ, clear, chuyển lesson) chỉ relay trong phòng và không lưu lại:
// annotation sống theo phiên, đóng phòng là mất.
type Hub struct {
	Rooms map[string]map[*websocket.Conn]*Client // theo từng unitID
	Mutex sync.RWMutex
}

var H = Hub{
	Rooms: make(map[string]map[*websocket.Conn]*Client),
}

// Event annotation trong lớp học
type ClassroomEvent struct {
	Type    string          `json:"type"` // stroke | clear | lesson_change | connected
	UnitID  string          `json:"unit_id"`
	Sender  string          `json:"sender,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Register client vào phòng của một unit
func (h *Hub) Register(unitID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Rooms[unitID]; !ok {
		h.Rooms[unitID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Rooms[unitID][conn] = client

	go h.writePump(unitID, conn)
}

// Broadcast event tới mọi client trong phòng trừ người gửi
func (h *Hub) Broadcast(unitID string, sender *websocket.Conn, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Rooms[unitID]; ok {
		for conn, client := range clients {
			if conn == sender {
				continue
			}
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// Unregister client khỏi phòng, phòng rỗng thì xoá luôn
func (h *Hub) Unregister(unitID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Rooms[unitID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Rooms, unitID)
		}
	}
}

// GetStats trả số phòng và số kết nối đang mở (cho health check)
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	connections := 0
	for _, clients := range h.Rooms {
		connections += len(clients)
	}
	return map[string]int{
		"rooms":       len(h.Rooms),
		"connections": connections,
	}
}

// Write pump riêng theo unitID
func (h *Hub) writePump(unitID string, conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.Rooms[unitID][conn]
	h.Mutex.RUnlock()
	if client == nil {
		return
	}
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
