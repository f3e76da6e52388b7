package handlers

import (
	"net/http"

	"coderrBack/internal/services"
)

type BaseInfoHandler struct {
	Service *services.BaseInfoService
}

func (h *BaseInfoHandler) GetBaseInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetBaseInfo(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
