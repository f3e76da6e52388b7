package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type OfferHandler struct {
	Service *services.OfferService
}

// parseOfferFilters reads the list query parameters; unparsable numbers are
// treated as absent.
func parseOfferFilters(r *http.Request) models.OfferFilterRequest {
	q := r.URL.Query()
	filter := models.OfferFilterRequest{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	}
	if v, err := strconv.Atoi(q.Get("creator_id")); err == nil {
		filter.CreatorID = v
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.Atoi(q.Get("max_delivery_time")); err == nil {
		filter.MaxDeliveryTime = v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil {
		filter.PageSize = v
	}
	return filter
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req models.OfferCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	userID, role := requesterFromContext(r)
	offer, err := h.Service.CreateOffer(r.Context(), userID, role, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.GetOffers(r.Context(), parseOfferFilters(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	offer, err := h.Service.GetOfferByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	var req models.OfferUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	requesterID, _ := requesterFromContext(r)
	offer, err := h.Service.UpdateOffer(r.Context(), id, requesterID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	requesterID, _ := requesterFromContext(r)
	if err := h.Service.DeleteOffer(r.Context(), id, requesterID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OfferHandler) GetOfferDetailByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid offer detail ID")
		return
	}

	detail, err := h.Service.GetOfferDetailByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *OfferHandler) UploadOfferImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid offer ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeFieldError(w, http.StatusBadRequest, "image", "This field is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeDetailError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	requesterID, _ := requesterFromContext(r)
	url, err := h.Service.UploadOfferImage(r.Context(), id, requesterID, data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": url})
}
