package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"coderrBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("writeJSON: %v", err)
		}
	}
}

// writeDetailError renders a DRF-style {"detail": ...} body.
func writeDetailError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeFieldError names the offending request field.
func writeFieldError(w http.ResponseWriter, status int, field, message string) {
	writeJSON(w, status, map[string]string{field: message})
}

// writeServiceError maps service-layer errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeFieldError(w, http.StatusBadRequest, validationErr.Field, validationErr.Message)
	case errors.Is(err, models.ErrForbidden):
		writeDetailError(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeDetailError(w, http.StatusBadRequest, "Invalid username or password.")
	case errors.Is(err, models.ErrDuplicateUsername):
		writeFieldError(w, http.StatusBadRequest, "username", "A user with that username already exists.")
	case errors.Is(err, models.ErrDuplicateEmail):
		writeFieldError(w, http.StatusBadRequest, "email", "A user with that email already exists.")
	case errors.Is(err, models.ErrAlreadyReviewed):
		writeDetailError(w, http.StatusBadRequest, "You have already reviewed this business user.")
	case errors.Is(err, models.ErrUserNotFound):
		writeDetailError(w, http.StatusNotFound, "User not found.")
	case errors.Is(err, models.ErrBusinessNotFound):
		writeDetailError(w, http.StatusNotFound, "Business user not found.")
	case errors.Is(err, models.ErrOfferNotFound):
		writeDetailError(w, http.StatusNotFound, "Offer not found.")
	case errors.Is(err, models.ErrTierNotFound):
		writeDetailError(w, http.StatusNotFound, "Offer detail not found.")
	case errors.Is(err, models.ErrOrderNotFound):
		writeDetailError(w, http.StatusNotFound, "The order was not found.")
	case errors.Is(err, models.ErrReviewNotFound):
		writeDetailError(w, http.StatusNotFound, "Review not found.")
	default:
		log.Printf("internal error: %v", err)
		writeDetailError(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// idParam reads a pat path parameter as an integer.
func idParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(":" + name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requesterFromContext returns the authenticated user id and role placed in
// the request context by the JWT middleware.
func requesterFromContext(r *http.Request) (int, string) {
	userID, _ := r.Context().Value("user_id").(int)
	role, _ := r.Context().Value("role").(string)
	return userID, role
}
