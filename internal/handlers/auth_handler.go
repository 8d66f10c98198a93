package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"biasharaBack/internal/models"
	"biasharaBack/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	result := h.Auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if !result.Success {
		w.WriteHeader(http.StatusBadRequest)
	}
	json.NewEncoder(w).Encode(result)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if !h.Auth.Login(r.Context(), req.Email, req.Password) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *AuthHandler) SignInWithGoogle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if !h.Auth.LoginWithGoogle(r.Context(), req.IDToken) {
		http.Error(w, "Google sign in failed", http.StatusUnauthorized)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(h.Auth.ResetPassword(r.Context(), req.Email))
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Auth.CurrentUser()
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":    user,
		"loading": h.Auth.Loading(),
	})
}

func (h *AuthHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EntityID string `json:"entity_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	favorites, err := h.Auth.ToggleFavorite(r.Context(), req.EntityID)
	if err != nil {
		if errors.Is(err, models.ErrNotAuthenticated) {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Failed to update favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string][]string{"favorites": favorites})
}
