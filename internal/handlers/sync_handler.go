package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"biasharaBack/utils"
)

// SyncHandler acknowledges user-sync calls from the session manager. The
// endpoint intentionally has no side effects; it exists so sign-in can
// block on a backend round trip.
type SyncHandler struct {
	Tokens *utils.Manager
}

type syncUserRequest struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
}

func (h *SyncHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
		return
	}
	subject, err := h.Tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var req syncUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.UID == "" || req.UID != subject {
		http.Error(w, "Token subject mismatch", http.StatusForbidden)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"isNewUser": false,
		"message":   "User sync acknowledged",
	})
}
