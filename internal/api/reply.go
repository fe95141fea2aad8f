package api

import (
	"encoding/json"
	"net/http"
)

// dataEnvelope is the success payload shape: {"data": ...}.
type dataEnvelope struct {
	Data any `json:"data"`
}

// errorEnvelope is the failure payload shape:
// {"error": {"key": ..., "message": ...}}.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

func replyData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dataEnvelope{Data: data})
}

func replyError(w http.ResponseWriter, status int, key, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: errorBody{Key: key, Message: message}})
}

func replySuccess(w http.ResponseWriter) {
	replyData(w, http.StatusOK, map[string]string{"status": "success"})
}
