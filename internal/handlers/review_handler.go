package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"biasharaBack/internal/models"
	"biasharaBack/internal/services"
)

const maxReviewUpload = 10 << 20 // 10 MB

type ReviewHandler struct {
	Service *services.ReviewService
}

// CreateReview accepts either a plain JSON review or a multipart form with
// a "review" JSON part plus "photos" file parts.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var (
		review models.Review
		photos [][]byte
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxReviewUpload); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("review")), &review); err != nil {
			http.Error(w, "Invalid review payload", http.StatusBadRequest)
			return
		}
		for _, fh := range r.MultipartForm.File["photos"] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, "Invalid photo", http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				http.Error(w, "Invalid photo", http.StatusBadRequest)
				return
			}
			photos = append(photos, data)
		}
	} else if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	review.UserID = userID(r)
	created, err := h.Service.CreateReview(r.Context(), review, photos)
	if err != nil {
		http.Error(w, "Failed to create review", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviewsByEntity(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.ReviewsByEntity(r.Context(), r.URL.Query().Get(":entity_id"))
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) GetReviewsByUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.ReviewsByUser(r.Context(), r.URL.Query().Get(":user_id"))
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}
