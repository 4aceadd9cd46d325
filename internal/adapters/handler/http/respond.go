package http

import (
	"encoding/json"
	"net/http"
)

// Failure and confirmation bodies share one envelope: {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// respondEmpty writes the empty-signal: a body-less status, conventionally
// 204, meaning "nothing found, not an error".
func respondEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

func respondInternalError(w http.ResponseWriter) {
	respondMessage(w, http.StatusInternalServerError, "Internal Server Error")
}

// decodeStrict decodes a JSON body rejecting unknown keys and mistyped
// values, so shape violations surface as validation failures.
func decodeStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
