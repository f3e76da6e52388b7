package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coderrBack/internal/models"
)

func TestWriteServiceErrorValidation(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, models.NewValidationError("rating", "Must be between 1 and 5."))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if body["rating"] != "Must be between 1 and 5." {
		t.Errorf("unexpected body: %#v", body)
	}
}

func TestWriteServiceErrorForbidden(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, models.ErrForbidden)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

func TestWriteServiceErrorNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	writeServiceError(w, models.ErrOfferNotFound)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("could not decode body: %v", err)
	}
	if body["detail"] == "" {
		t.Errorf("expected a detail message, got %#v", body)
	}
}

func TestIDParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/offers/15?:id=15", nil)
	id, ok := idParam(r, "id")
	if !ok || id != 15 {
		t.Fatalf("expected id 15, got %d (ok=%v)", id, ok)
	}

	r = httptest.NewRequest("GET", "/offers/x?:id=x", nil)
	if _, ok := idParam(r, "id"); ok {
		t.Fatal("expected non-numeric id to be rejected")
	}

	r = httptest.NewRequest("GET", "/offers/0?:id=0", nil)
	if _, ok := idParam(r, "id"); ok {
		t.Fatal("expected zero id to be rejected")
	}

	r = httptest.NewRequest("GET", "/offers", nil)
	if _, ok := idParam(r, "id"); ok {
		t.Fatal("expected missing id to be rejected")
	}
}
