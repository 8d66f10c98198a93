package handlers

import (
	"encoding/json"
	"net/http"

	"biasharaBack/internal/models"
	"biasharaBack/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

// GetDashboard serves the cached state, loading it on first access.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	state, ok := h.Dashboard.Snapshot(uid)
	if !ok {
		state = h.Dashboard.Refresh(r.Context(), uid)
	}
	json.NewEncoder(w).Encode(state)
}

func (h *DashboardHandler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	json.NewEncoder(w).Encode(h.Dashboard.Refresh(r.Context(), uid))
}

func (h *DashboardHandler) Follow(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	var req struct {
		TargetID string `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TargetID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	status, err := h.Dashboard.FollowUser(r.Context(), uid, req.TargetID)
	if err != nil {
		http.Error(w, "Failed to follow", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

func (h *DashboardHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	targetID := r.URL.Query().Get(":target_id")
	if err := h.Dashboard.UnfollowUser(r.Context(), uid, targetID); err != nil {
		http.Error(w, "Failed to unfollow", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) CreateBookmarkList(w http.ResponseWriter, r *http.Request) {
	var list models.BookmarkList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	list.UserID = userID(r)
	id, err := h.Dashboard.CreateBookmarkList(r.Context(), list)
	if err != nil {
		http.Error(w, "Failed to create", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *DashboardHandler) AddToBookmarkList(w http.ResponseWriter, r *http.Request) {
	listID := r.URL.Query().Get(":id")
	var req struct {
		EntityID string `json:"entity_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EntityID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Dashboard.AddToBookmarkList(r.Context(), userID(r), listID, req.EntityID); err != nil {
		http.Error(w, "Failed to update list", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var draft models.ReviewDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	draft.UserID = userID(r)
	id, err := h.Dashboard.SaveDraft(r.Context(), draft)
	if err != nil {
		http.Error(w, "Failed to save draft", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *DashboardHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.Dashboard.DeleteDraft(r.Context(), userID(r), r.URL.Query().Get(":id")); err != nil {
		http.Error(w, "Failed to delete draft", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Dashboard.MarkNotificationAsRead(r.Context(), userID(r), r.URL.Query().Get(":id")); err != nil {
		http.Error(w, "Failed to mark as read", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	var req struct {
		Points int    `json:"points"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	total, err := h.Dashboard.AddPoints(r.Context(), uid, req.Points, req.Reason)
	if err != nil {
		http.Error(w, "Failed to add points", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{
		"total_points": total,
		"level":        models.LevelForPoints(total),
	})
}

func (h *DashboardHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Dashboard.UpdateUserProfile(r.Context(), uid, upd); err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
