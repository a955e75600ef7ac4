package venue

import (
	"encoding/json"
	"net/http"
)

type VenueDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Capacity int    `json:"capacity"`
}

type VenueHandler struct {
	repo VenueRepo
}

func NewVenueHandler(repo VenueRepo) *VenueHandler {
	return &VenueHandler{repo}
}

func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	venues, err := h.repo.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]VenueDTO, 0, len(venues))
	for _, v := range venues {
		dtos = append(dtos, VenueDTO{ID: v.ID, Name: v.Name, Address: v.Address, Capacity: v.Capacity})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
