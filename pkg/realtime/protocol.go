package realtime

import (
	"time"
)

type MessageType string

const (
	// Server to client.
	MsgConnected     MessageType = "connected"
	MsgEventsUpdated MessageType = "eventsUpdated"
	MsgEventReminder MessageType = "eventReminder"
	MsgUserLoggedIn  MessageType = "userLoggedIn"

	// Client to server.
	MsgRequestEventReminders MessageType = "requestEventReminders"
	MsgEventChanged          MessageType = "eventChanged"
)

// Message is the JSON envelope on the socket. Timestamp is set by the server
// at send time.
type Message struct {
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ConnectedPayload acknowledges a new connection and hands the client its id.
type ConnectedPayload struct {
	ClientID string `json:"clientId"`
	Message  string `json:"message"`
}

// EventsUpdatedPayload tells clients that server state changed. The embedded
// event data is a hint only: clients are expected to re-fetch the event list
// through the HTTP API rather than merge this payload into local state, since
// delivery is at-least-once and possibly stale.
type EventsUpdatedPayload struct {
	Action    string `json:"action"`
	EventID   int    `json:"eventId"`
	EventData any    `json:"eventData,omitempty"`
}

const (
	ActionAdded         = "added"
	ActionUpdated       = "updated"
	ActionBudgetUpdated = "budget_updated"
)

// InboundMessage is what the read loop decodes from a client.
type InboundMessage struct {
	Type    MessageType         `json:"type"`
	Payload EventChangedPayload `json:"payload,omitempty"`
}

// EventChangedPayload is an informational echo of a mutation the client
// already performed over HTTP.
type EventChangedPayload struct {
	Action  string `json:"action,omitempty"`
	EventID int    `json:"eventId,omitempty"`
	Event   any    `json:"event,omitempty"`
}
