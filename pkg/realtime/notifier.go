package realtime

import (
	"github.com/eventra/eventra/internal/event_bus"
	"github.com/eventra/eventra/pkg/reminder"
)

// ChangeNotifier forwards committed store mutations from the in-process bus
// to all connected clients as eventsUpdated broadcasts. It subscribes after
// construction, so a broadcast can only follow a successful commit.
type ChangeNotifier struct {
	hub         *Hub
	unsubscribe []func()
}

func NewChangeNotifier(bus *event_bus.EventBus, hub *Hub) *ChangeNotifier {
	n := &ChangeNotifier{hub: hub}

	n.unsubscribe = append(n.unsubscribe,
		event_bus.SubscribeTyped[event_bus.EventCreated](bus, event_bus.EventCreatedType,
			func(e event_bus.EventT[event_bus.EventCreated]) error {
				hub.Broadcast(MsgEventsUpdated, EventsUpdatedPayload{
					Action:  ActionAdded,
					EventID: e.Data.EventID,
				})
				return nil
			}),
		event_bus.SubscribeTyped[event_bus.EventUpdated](bus, event_bus.EventUpdatedType,
			func(e event_bus.EventT[event_bus.EventUpdated]) error {
				hub.Broadcast(MsgEventsUpdated, EventsUpdatedPayload{
					Action:  ActionUpdated,
					EventID: e.Data.EventID,
				})
				return nil
			}),
		event_bus.SubscribeTyped[event_bus.EventBudgetUpdated](bus, event_bus.EventBudgetUpdatedType,
			func(e event_bus.EventT[event_bus.EventBudgetUpdated]) error {
				hub.Broadcast(MsgEventsUpdated, EventsUpdatedPayload{
					Action:  ActionBudgetUpdated,
					EventID: e.Data.EventID,
					EventData: map[string]any{
						"actualBudget": e.Data.ActualBudget,
					},
				})
				return nil
			}),
		event_bus.SubscribeTyped[event_bus.UserLoggedIn](bus, event_bus.UserLoggedInType,
			func(e event_bus.EventT[event_bus.UserLoggedIn]) error {
				hub.Broadcast(MsgUserLoggedIn, map[string]any{
					"userId":   e.Data.UserID,
					"userName": e.Data.DisplayName,
				})
				return nil
			}),
	)

	return n
}

// Close detaches the notifier from the bus.
func (n *ChangeNotifier) Close() {
	for _, unsub := range n.unsubscribe {
		unsub()
	}
	n.unsubscribe = nil
}

// BroadcastNotice delivers a reminder to every connected client.
func (h *Hub) BroadcastNotice(notice reminder.Notice) {
	h.Broadcast(MsgEventReminder, notice)
}

// SendNotice delivers a reminder to one client, no-op when it is gone.
func (h *Hub) SendNotice(clientID string, notice reminder.Notice) {
	h.SendTo(clientID, MsgEventReminder, notice)
}
