package handlers

import (
	"encoding/json"
	"net/http"

	"biasharaBack/internal/services"
)

type PushHandler struct {
	Service *services.PushService
}

func (h *PushHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Service.RegisterToken(r.Context(), uid, req.Token); err != nil {
		http.Error(w, "Failed to register token", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
