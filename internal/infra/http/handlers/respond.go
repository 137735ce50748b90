package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rsharda/kam-leads/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError owns the error-to-status mapping. Use cases return typed
// errors and never see HTTP.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErrs  usecase.ValidationErrors
		invalidStatus   *usecase.InvalidStatusError
		notFound        *usecase.NotFoundError
		alreadyAssigned *usecase.AlreadyAssignedError
	)

	switch {
	case errors.As(err, &validationErrs):
		writeMessage(w, http.StatusBadRequest, validationErrs.Error())
	case errors.As(err, &invalidStatus):
		writeMessage(w, http.StatusBadRequest, "Invalid status value")
	case errors.As(err, &notFound):
		writeMessage(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &alreadyAssigned):
		writeMessage(w, http.StatusConflict, "Lead is already assigned to this KAM")
	case errors.Is(err, usecase.ErrVersionConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		log.Printf("❌ internal error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
