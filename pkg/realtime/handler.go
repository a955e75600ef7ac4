package realtime

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// ReminderRunner triggers an immediate reminder recomputation scoped to one
// client. Implemented by the reminder scheduler.
type ReminderRunner interface {
	RunFor(ctx context.Context, clientID string)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection, registers the client with the hub, and
// runs the read loop dispatching client messages until the socket closes.
func ServeWS(hub *Hub, reminders ReminderRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Errorf("websocket upgrade failed: %v", err)
			return
		}

		client := hub.Register(conn)
		defer hub.Unregister(client)

		conn.SetReadLimit(4096)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg InboundMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				log.Debugf("ignoring malformed message from client %s: %v", client.ID, err)
				continue
			}

			switch msg.Type {
			case MsgRequestEventReminders:
				reminders.RunFor(r.Context(), client.ID)
			case MsgEventChanged:
				// Informational echo of a mutation the client already made over
				// HTTP; rebroadcast so other clients re-fetch.
				hub.Broadcast(MsgEventsUpdated, EventsUpdatedPayload{
					Action:  msg.Payload.Action,
					EventID: msg.Payload.EventID,
				})
			default:
				log.Debugf("ignoring unknown message type %q from client %s", msg.Type, client.ID)
			}
		}
	}
}
