package status

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eventra/eventra/internal/utils"
)

// ClientCounter reports how many socket clients are currently connected.
// Implemented by the realtime hub.
type ClientCounter interface {
	ClientCount() int
}

type StatusDTO struct {
	Status           string    `json:"status"`
	ServerTime       time.Time `json:"serverTime"`
	UptimeSeconds    float64   `json:"uptimeSeconds"`
	ConnectedClients int       `json:"connectedClients"`
	StorageMode      string    `json:"storageMode"`
}

type Handler struct {
	clients     ClientCounter
	storageMode string
	clock       utils.Clock
	startedAt   time.Time
}

func NewHandler(clients ClientCounter, storageMode string) *Handler {
	clock := &utils.SystemClock{}
	return &Handler{
		clients:     clients,
		storageMode: storageMode,
		clock:       clock,
		startedAt:   clock.Now(),
	}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	now := h.clock.Now()
	response := StatusDTO{
		Status:           "online",
		ServerTime:       now,
		UptimeSeconds:    now.Sub(h.startedAt).Seconds(),
		ConnectedClients: h.clients.ClientCount(),
		StorageMode:      h.storageMode,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
