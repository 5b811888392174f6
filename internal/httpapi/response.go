package httpapi

import (
	"encoding/json"
	"net/http"

	"ecommerce-api/internal/model"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	StatusCode int      `json:"statusCode"`
	IsSuccess  bool     `json:"isSuccess"`
	Message    string   `json:"message"`
	Data       any      `json:"data,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, APIResponse{
		StatusCode: status,
		IsSuccess:  true,
		Message:    message,
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, status int, message string, errs ...string) {
	writeJSON(w, status, APIResponse{
		StatusCode: status,
		IsSuccess:  false,
		Message:    message,
		Errors:     errs,
	})
}

// statusForReason maps a business failure to its HTTP status.
func statusForReason(r model.Reason) int {
	switch r {
	case model.ReasonNotFound:
		return http.StatusNotFound
	case model.ReasonInvalidTransition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
