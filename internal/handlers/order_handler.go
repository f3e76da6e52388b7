package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type OrderHandler struct {
	Service *services.OrderService
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeDetailError(w, http.StatusBadRequest, "Content-Type must be application/json")
		return
	}

	var req models.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "offer_detail_id" {
			writeFieldError(w, http.StatusBadRequest, "offer_detail_id", "Must be a valid integer ID.")
			return
		}
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	userID, role := requesterFromContext(r)
	order, err := h.Service.CreateOrder(r.Context(), userID, role, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := requesterFromContext(r)
	orders, err := h.Service.GetOrdersForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// statusOnlyPayload reports whether the update payload contains exactly the
// status field, and returns its value.
func statusOnlyPayload(payload map[string]json.RawMessage) (string, bool) {
	raw, ok := payload["status"]
	if !ok || len(payload) != 1 {
		return "", false
	}
	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", false
	}
	return status, true
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}
	status, ok := statusOnlyPayload(payload)
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Only the 'status' field can be updated.")
		return
	}

	requesterID, _ := requesterFromContext(r)
	order, err := h.Service.UpdateOrderStatus(r.Context(), id, requesterID, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	_, role := requesterFromContext(r)
	if err := h.Service.DeleteOrder(r.Context(), id, role); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) GetOrderCount(w http.ResponseWriter, r *http.Request) {
	businessUserID, ok := idParam(r, "business_user_id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid business user ID")
		return
	}

	count, err := h.Service.GetOrderCount(r.Context(), businessUserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.OrderCountResponse{OrderCount: count})
}

func (h *OrderHandler) GetCompletedOrderCount(w http.ResponseWriter, r *http.Request) {
	businessUserID, ok := idParam(r, "business_user_id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid business user ID")
		return
	}

	count, err := h.Service.GetCompletedOrderCount(r.Context(), businessUserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.CompletedOrderCountResponse{CompletedOrderCount: count})
}
