package ws

import (
	"encoding/json"
	"sync"

	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/services/dto"
)

// Manager keeps track of open websocket connections per user and fans
// notification events out to them. A user may hold several connections
// (multiple tabs); each one gets every event.
type Manager struct {
	clients    map[uint]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan userEvent
	mutex      sync.RWMutex
}

type userEvent struct {
	userID  uint
	payload []byte
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan userEvent, 64),
	}
}

// Run owns the clients map. All mutation goes through the channels so
// connection churn and event delivery never race.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mutex.Lock()
			if m.clients[client.userID] == nil {
				m.clients[client.userID] = make(map[*Client]bool)
			}
			m.clients[client.userID][client] = true
			m.mutex.Unlock()
			logger.Debug("websocket client connected", "user_id", client.userID)

		case client := <-m.unregister:
			m.mutex.Lock()
			if conns, ok := m.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(m.clients, client.userID)
					}
				}
			}
			m.mutex.Unlock()
			logger.Debug("websocket client disconnected", "user_id", client.userID)

		case event := <-m.events:
			m.mutex.RLock()
			for client := range m.clients[event.userID] {
				select {
				case client.send <- event.payload:
				default:
					// Slow consumer; drop the event rather than block delivery
					// to everyone else.
					logger.Warn("websocket send buffer full, dropping event",
						"user_id", event.userID)
				}
			}
			m.mutex.RUnlock()
		}
	}
}

// PushToUser implements services.Publisher.
func (m *Manager) PushToUser(userID uint, event dto.NotificationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal websocket event", "error", err.Error())
		return
	}
	m.events <- userEvent{userID: userID, payload: payload}
}
