package server

import (
	"encoding/json"
	"net/http"
)

type errorPayload struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func buildErrorPayload(status int, msg string) []byte {
	b, _ := json.Marshal(errorPayload{Error: msg, Code: status})
	return b
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buildErrorPayload(status, msg))
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeBytes(w, "application/json", b)
}

func writeBytes(w http.ResponseWriter, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(b)
}
