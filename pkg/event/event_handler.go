package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/eventra/eventra/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	EstimatedBudget float64 `json:"estimatedBudget"`
	ActualBudget    float64 `json:"actualBudget"`
	MaxGuests       int     `json:"maxGuests"`
	CategoryID      int     `json:"categoryId"`
	VenueID         int     `json:"venueId"`
	ManagerID       int     `json:"managerId"`
}

type BudgetUpdateRequest struct {
	ActualBudget *float64 `json:"actualBudget"`
}

type EventHandler struct {
	eventService EventService
}

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{eventService}
}

func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	events, err := h.eventService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	eventsDTO := make([]EventDTO, 0, len(events))
	for _, e := range events {
		eventsDTO = append(eventsDTO, eventToDTO(e))
	}

	if err := json.NewEncoder(w).Encode(eventsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new event")

	newEvent, ok := decodeEventRequest(w, r)
	if !ok {
		return
	}

	stored, err := h.eventService.Create(r.Context(), newEvent)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Updating event")

	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	updated, ok := decodeEventRequest(w, r)
	if !ok {
		return
	}
	updated.ID = id

	stored, err := h.eventService.Update(r.Context(), updated)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(eventToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) UpdateEventBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Updating event budget")

	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	var budgetRequest BudgetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&budgetRequest); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}
	if budgetRequest.ActualBudget == nil {
		writeBadRequest(w, "Missing 'actualBudget' in request body", "")
		return
	}

	stored, err := h.eventService.UpdateBudget(r.Context(), id, *budgetRequest.ActualBudget)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(eventToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func decodeEventRequest(w http.ResponseWriter, r *http.Request) (Event, bool) {
	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return Event{}, false
	}

	startTime, err := time.Parse(time.RFC3339, dto.StartTime)
	if err != nil {
		writeBadRequest(w, "Invalid startTime format", "Start time must be in RFC3339 format")
		return Event{}, false
	}
	endTime, err := time.Parse(time.RFC3339, dto.EndTime)
	if err != nil {
		writeBadRequest(w, "Invalid endTime format", "End time must be in RFC3339 format")
		return Event{}, false
	}

	return Event{
		Name:            dto.Name,
		Description:     dto.Description,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          Status(dto.Status),
		EstimatedBudget: dto.EstimatedBudget,
		ActualBudget:    dto.ActualBudget,
		MaxGuests:       dto.MaxGuests,
		CategoryID:      dto.CategoryID,
		VenueID:         dto.VenueID,
		ManagerID:       dto.ManagerID,
	}, true
}

func eventIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "Invalid event id", "")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEventNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrInvalidEvent) {
		writeBadRequest(w, err.Error(), "")
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeBadRequest(w http.ResponseWriter, message string, details string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(event Event) EventDTO {
	return EventDTO{
		ID:              event.ID,
		Name:            event.Name,
		Description:     event.Description,
		StartTime:       event.StartTime.Format(time.RFC3339),
		EndTime:         event.EndTime.Format(time.RFC3339),
		Status:          string(event.Status),
		EstimatedBudget: event.EstimatedBudget,
		ActualBudget:    event.ActualBudget,
		MaxGuests:       event.MaxGuests,
		CategoryID:      event.CategoryID,
		VenueID:         event.VenueID,
		ManagerID:       event.ManagerID,
	}
}
