package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"biasharaBack/internal/models"
	"biasharaBack/internal/services"
)

type EntityHandler struct {
	Service *services.EntityService
}

func (h *EntityHandler) GetEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.Service.ListEntities(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(entities)
}

func (h *EntityHandler) GetEntityByID(w http.ResponseWriter, r *http.Request) {
	entity, err := h.Service.GetEntity(r.Context(), r.URL.Query().Get(":id"))
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "Entity not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(entity)
}

func (h *EntityHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var entity models.Entity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if entity.ID == "" {
		entity.ID = uuid.New().String()
	}
	if err := h.Service.SaveEntity(r.Context(), entity); err != nil {
		http.Error(w, "Failed to create", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(entity)
}
