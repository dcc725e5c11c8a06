package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is written for failures detected before the service is called
// (bad path values, malformed bodies, validation). It shares the success and
// message fields of the service envelope.
type ErrorResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
	Meta    any           `json:"meta,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func buildMeta(r *http.Request) any {
	if r == nil {
		return nil
	}
	requestID := RequestIDFrom(r)
	if requestID == "" {
		return nil
	}
	return map[string]any{"request_id": requestID}
}

// JSON writes body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// JSONError writes an ErrorResponse. r may be nil.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string, details []ErrorDetail) {
	JSON(w, statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Details: details,
		Meta:    buildMeta(r),
	})
}
