package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	resp, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := h.Service.GetProfileByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	requesterID, _ := requesterFromContext(r)
	profile, err := h.Service.UpdateProfile(r.Context(), id, requesterID, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) GetBusinessProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.GetProfilesByRole(r.Context(), models.RoleBusiness)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *UserHandler) GetCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.GetProfilesByRole(r.Context(), models.RoleCustomer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *UserHandler) UploadProfileFile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeDetailError(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeDetailError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeFieldError(w, http.StatusBadRequest, "file", "This field is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeDetailError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	requesterID, _ := requesterFromContext(r)
	url, err := h.Service.UploadProfileFile(r.Context(), id, requesterID, data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"file": url})
}
