package main

import (
	"encoding/json"
	"net/http"
)

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, err.Error())
	writeDetail(w, http.StatusInternalServerError, "Internal server error.")
}

func (app *application) authError(w http.ResponseWriter, detail string) {
	writeDetail(w, http.StatusUnauthorized, detail)
}

func (app *application) forbiddenError(w http.ResponseWriter, detail string) {
	writeDetail(w, http.StatusForbidden, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
