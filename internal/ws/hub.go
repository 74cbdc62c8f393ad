package ws

import (
	"encoding/json"
	"sync"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// stationEvent is an internal struct for routing events to station rooms
type stationEvent struct {
	Station string
	Event   Event
}

// Hub maintains the set of active clients and broadcasts messages to them.
// Clients join the room of their prep station (KITCHEN or BAR), so a new
// ticket only wakes the displays that will actually work it.
type Hub struct {
	// Registered clients by station
	rooms map[string]map[*Client]bool

	// Inbound messages from clients (register/unregister)
	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *stationEvent

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *stationEvent, 256),
	}
}

// Run starts the hub's main loop
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.station] == nil {
				h.rooms[client.station] = make(map[*Client]bool)
			}
			h.rooms[client.station][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.station]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					// Clean up empty rooms
					if len(clients) == 0 {
						delete(h.rooms, client.station)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[event.Station]

			// Marshal event to JSON once
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			// Send to all clients in this station's room
			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.rooms[event.Station], client)
					if len(h.rooms[event.Station]) == 0 {
						delete(h.rooms, event.Station)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToStation sends an event to all clients watching one station.
// This is the public API for handlers to broadcast events.
func (h *Hub) BroadcastToStation(station string, event Event) {
	h.broadcast <- &stationEvent{
		Station: station,
		Event:   event,
	}
}

// BroadcastToStations fans an event out to several stations, e.g. a
// ticket carrying both food and drinks.
func (h *Hub) BroadcastToStations(stations []string, event Event) {
	for _, s := range stations {
		h.BroadcastToStation(s, event)
	}
}
