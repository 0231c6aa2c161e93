package response

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Envelope is the success wire shape: payloads always live under "data",
// so clients can tell them apart from the error body.
type Envelope struct {
	Data any `json:"data"`
}

// WriteJSON serializes v with the given status. A handler that already
// set Content-Type keeps it.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", contentTypeJSON)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK wraps data in the envelope with a 200.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Data: data})
}

// Created wraps data in the envelope with a 201.
func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Data: data})
}

// NoContent writes 204 and nothing else.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
