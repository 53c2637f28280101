package response

import (
	"encoding/json"
	"net/http"

	"cookieshub/internal/generated/dto"
)

// InternalErrorMessage тело любого 500, подробности только в логах.
const InternalErrorMessage = "internal error"

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, dto.Error{Error: message})
}

func InternalError(w http.ResponseWriter) error {
	return Error(w, http.StatusInternalServerError, InternalErrorMessage)
}
