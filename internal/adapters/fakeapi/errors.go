package fakeapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/campus-parkfinder/parkfinder/internal/adapters/apiwire"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError answers with the backend's {"status":"error"} envelope. The request id is
// echoed in a header so failures can be matched to client logs.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		w.Header().Set("X-Request-ID", rid)
	}
	writeJSON(w, status, apiwire.StatusResponse{Status: "error", Message: message})
}
