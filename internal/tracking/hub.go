// Package tracking pushes live truck positions to monitoring dashboards
// over WebSocket.
package tracking

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fleetops/internal/logger"
)

// PositionUpdate is the message broadcast to every connected dashboard when
// a truck reports new telemetry.
type PositionUpdate struct {
	TruckID    string    `json:"truck_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	SpeedKph   float64   `json:"speed_kph,omitempty"`
	OdometerKm int       `json:"odometer_km,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Hub fans position updates out to connected clients. A slow client does not
// block the others; its messages are dropped and the connection is closed on
// the next write error.
type Hub struct {
	clients   map[*websocket.Conn]bool
	broadcast chan *PositionUpdate
	mu        sync.Mutex
}

func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan *PositionUpdate, 100),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for update := range h.broadcast {
		h.mu.Lock()
		for conn := range h.clients {
			if err := conn.WriteJSON(update); err != nil {
				logger.Warn("Failed to push position update, dropping client",
					zap.String("truck_id", update.TruckID),
					zap.Error(err),
				)
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.mu.Unlock()
	}
}

// Register adds a monitoring connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

// Unregister removes a monitoring connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Publish queues an update for broadcast. Updates are dropped when the
// buffer is full rather than blocking the caller.
func (h *Hub) Publish(update *PositionUpdate) {
	select {
	case h.broadcast <- update:
	default:
		logger.Warn("Position broadcast channel full, dropping update",
			zap.String("truck_id", update.TruckID),
		)
	}
}
