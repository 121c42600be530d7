package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of browser clients subscribed to the live post feed.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn // clientID -> conn
}

func NewManager() *Manager {
	return &Manager{clients: make(map[string]*websocket.Conn)}
}

// Register adds a client connection, replacing any existing one.
func (m *Manager) Register(clientID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.clients[clientID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.clients[clientID] = conn
}

// Unregister removes a client connection.
func (m *Manager) Unregister(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.clients[clientID]; ok {
		_ = conn.Close()
		delete(m.clients, clientID)
	}
}

// Broadcast sends a text message to every subscribed client. Clients whose
// write fails are dropped; a dead browser tab must not stall the feed.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(m.clients, id)
		}
	}
}

// Count returns the number of connected clients.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
