package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventra/eventra/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"displayName"`
	Specialty   string `json:"specialty,omitempty"`
	Role        string `json:"role"`
}

type ManagerDTO struct {
	ID          int    `json:"id"`
	DisplayName string `json:"displayName"`
	Specialty   string `json:"specialty,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Login attempt")

	var loginRequest struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&loginRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	u, err := h.service.Login(r.Context(), loginRequest.Login, loginRequest.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid login or password"})
			return
		}
		if errors.Is(err, ErrAccessRestricted) {
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Access restricted"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(userToDTO(u)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, userToDTO(u))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetManagers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	managers, err := h.service.ListManagers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ManagerDTO, 0, len(managers))
	for _, m := range managers {
		dtos = append(dtos, ManagerDTO{
			ID:          m.ID,
			DisplayName: m.DisplayName(),
			Specialty:   m.Specialty,
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func userToDTO(u User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Login:       u.Login,
		DisplayName: u.DisplayName(),
		Specialty:   u.Specialty,
		Role:        string(u.Role),
	}
}
