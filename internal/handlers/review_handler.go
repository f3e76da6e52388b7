package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	userID, role := requesterFromContext(r)
	created, err := h.Service.CreateReview(r.Context(), userID, role, review)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ReviewFilterRequest{Ordering: q.Get("ordering")}
	if v, err := strconv.Atoi(q.Get("business_user_id")); err == nil {
		filter.BusinessUserID = v
	}
	if v, err := strconv.Atoi(q.Get("reviewer_id")); err == nil {
		filter.ReviewerID = v
	}

	reviews, err := h.Service.GetReviews(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	review, err := h.Service.GetReviewByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var patch models.ReviewPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	requesterID, _ := requesterFromContext(r)
	review, err := h.Service.UpdateReview(r.Context(), id, requesterID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	requesterID, _ := requesterFromContext(r)
	if err := h.Service.DeleteReview(r.Context(), id, requesterID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
