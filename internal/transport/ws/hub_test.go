package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("bad envelope: %v", err)
		}
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHubBroadcastsToAllDashboards(t *testing.T) {
	hub := NewHub()

	front := &Connection{DashboardID: "dash_front", Send: make(chan []byte, 4), Hub: hub}
	doctor := &Connection{DashboardID: "dash_doc", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(front)
	hub.Register(doctor)

	hub.BroadcastToDashboard(string(MsgAppointmentCreated), map[string]string{"id": "apt-1"})

	for _, conn := range []*Connection{front, doctor} {
		msg := recvMessage(t, conn)
		if msg.Type != MsgAppointmentCreated {
			t.Errorf("type = %q, want %q", msg.Type, MsgAppointmentCreated)
		}
		var payload map[string]string
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatal(err)
		}
		if payload["id"] != "apt-1" {
			t.Errorf("payload = %v", payload)
		}
	}
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()

	conn := &Connection{DashboardID: "dash_x", Send: make(chan []byte, 4), Hub: hub}
	hub.Register(conn)
	hub.Unregister(conn)

	// The send channel is closed on unregister.
	select {
	case _, ok := <-conn.Send:
		if ok {
			t.Error("expected closed channel, got message")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}
}
