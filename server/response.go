// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"net/http"
)

// errorBody is the envelope of every non-2xx response.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	id, _ := RequestIDFromContext(r.Context())
	writeJSON(w, code, errorBody{Error: msg, RequestID: id})
}
