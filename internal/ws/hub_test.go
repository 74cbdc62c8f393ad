package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/barkada-pos/api/internal/enum"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub, station string) *Client {
	return &Client{
		hub:     hub,
		station: station,
		send:    make(chan []byte, 256),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub, enum.StationKitchen)

	// Register client
	hub.register <- client

	// Give hub time to process
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	if hub.rooms[enum.StationKitchen] == nil {
		t.Fatal("station room not created")
	}
	if !hub.rooms[enum.StationKitchen][client] {
		t.Fatal("client not registered in station room")
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub, enum.StationBar)

	// Register client
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	// Unregister client
	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	// Room should be cleaned up when empty
	if hub.rooms[enum.StationBar] != nil {
		t.Fatal("station room not cleaned up after last client unregistered")
	}
}

func TestBroadcastToSingleStation(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	kitchen := mockClient(hub, enum.StationKitchen)
	bar := mockClient(hub, enum.StationBar)

	// Register both clients
	hub.register <- kitchen
	hub.register <- bar
	time.Sleep(10 * time.Millisecond)

	// Broadcast to the kitchen only
	testPayload := json.RawMessage(`{"ticket_number":"BKD-001"}`)
	event := Event{
		Type:    "ticket.created",
		Payload: testPayload,
	}
	hub.BroadcastToStation(enum.StationKitchen, event)

	// Kitchen display receives the message
	select {
	case msg := <-kitchen.send:
		var received Event
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatalf("failed to unmarshal message: %v", err)
		}
		if received.Type != "ticket.created" {
			t.Errorf("expected type 'ticket.created', got '%s'", received.Type)
		}
		if string(received.Payload) != string(testPayload) {
			t.Errorf("expected payload '%s', got '%s'", testPayload, received.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("kitchen client did not receive message")
	}

	// Bar display does NOT receive the message
	select {
	case <-bar.send:
		t.Fatal("bar client should not have received a kitchen ticket")
	case <-time.After(50 * time.Millisecond):
		// Expected - no message received
	}
}

func TestBroadcastToMultipleClientsInSameStation(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub, enum.StationKitchen)
	client2 := mockClient(hub, enum.StationKitchen)
	client3 := mockClient(hub, enum.StationKitchen)

	// Register all clients to the same station
	hub.register <- client1
	hub.register <- client2
	hub.register <- client3
	time.Sleep(10 * time.Millisecond)

	// Broadcast event
	testPayload := json.RawMessage(`{"status":"COOKING"}`)
	event := Event{
		Type:    "ticket.updated",
		Payload: testPayload,
	}
	hub.BroadcastToStation(enum.StationKitchen, event)

	// All three clients should receive the message
	clients := []*Client{client1, client2, client3}
	for i, client := range clients {
		select {
		case msg := <-client.send:
			var received Event
			if err := json.Unmarshal(msg, &received); err != nil {
				t.Fatalf("client%d: failed to unmarshal: %v", i+1, err)
			}
			if received.Type != "ticket.updated" {
				t.Errorf("client%d: expected type 'ticket.updated', got '%s'", i+1, received.Type)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client%d did not receive message", i+1)
		}
	}
}

func TestBroadcastToStations_FansOut(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	kitchen := mockClient(hub, enum.StationKitchen)
	bar := mockClient(hub, enum.StationBar)
	hub.register <- kitchen
	hub.register <- bar
	time.Sleep(10 * time.Millisecond)

	// A mixed ticket (food + drinks) goes to both rooms
	event := Event{
		Type:    "ticket.created",
		Payload: json.RawMessage(`{"ticket_number":"BKD-007"}`),
	}
	hub.BroadcastToStations([]string{enum.StationKitchen, enum.StationBar}, event)

	for name, client := range map[string]*Client{"kitchen": kitchen, "bar": bar} {
		select {
		case <-client.send:
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("%s client did not receive mixed ticket", name)
		}
	}
}

func TestHubCleanupEmptyRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub, enum.StationBar)
	client2 := mockClient(hub, enum.StationBar)

	// Register both clients
	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	if len(hub.rooms[enum.StationBar]) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(hub.rooms[enum.StationBar]))
	}
	hub.mu.RUnlock()

	// Unregister first client
	hub.unregister <- client1
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	if len(hub.rooms[enum.StationBar]) != 1 {
		t.Fatalf("expected 1 client after first unregister, got %d", len(hub.rooms[enum.StationBar]))
	}
	hub.mu.RUnlock()

	// Unregister second client
	hub.unregister <- client2
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	if hub.rooms[enum.StationBar] != nil {
		t.Fatal("room should be deleted when last client unregisters")
	}
	hub.mu.RUnlock()
}

func TestBroadcastToEmptyStation(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Only a kitchen display is connected
	kitchen := mockClient(hub, enum.StationKitchen)
	hub.register <- kitchen
	time.Sleep(10 * time.Millisecond)

	// Broadcast to the bar (no subscribers)
	event := Event{
		Type:    "ticket.created",
		Payload: json.RawMessage(`{"test":"data"}`),
	}
	hub.BroadcastToStation(enum.StationBar, event)

	// The kitchen display should NOT receive anything
	select {
	case <-kitchen.send:
		t.Fatal("client should not receive message for a different station")
	case <-time.After(50 * time.Millisecond):
		// Expected - no message
	}
}
