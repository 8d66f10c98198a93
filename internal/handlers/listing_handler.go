package handlers

import (
	"encoding/json"
	"net/http"

	"biasharaBack/internal/models"
	"biasharaBack/internal/services"
)

type ListingHandler struct {
	Service *services.ListingService
}

func (h *ListingHandler) SubmitListing(w http.ResponseWriter, r *http.Request) {
	var listing models.ListingSubmission
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	listing.UserID = userID(r)
	id, err := h.Service.SubmitListing(r.Context(), listing)
	if err != nil {
		http.Error(w, "Failed to submit listing", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"id": id, "status": models.SubmissionStatusPending})
}

func (h *ListingHandler) GetUserListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.UserListings(r.Context(), r.URL.Query().Get(":user_id"))
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	var claim models.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	claim.UserID = userID(r)
	id, err := h.Service.SubmitClaimRequest(r.Context(), claim)
	if err != nil {
		http.Error(w, "Failed to submit claim", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"id": id, "status": models.SubmissionStatusPending})
}
