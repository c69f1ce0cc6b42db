// Package api exposes the extraction pipeline over HTTP. The routing layer
// is deliberately thin: request validation, error mapping, CORS, and JSON
// shapes. All real work happens in the scrape and clone packages.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/hyperifyio/pageclone/internal/clone"
	"github.com/hyperifyio/pageclone/internal/scrape"
)

// Server wires the two extraction paths to their routes.
type Server struct {
	Summarizer *scrape.Summarizer
	Cloner     *clone.Assembler
	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string
}

// Handler builds the routed handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/scrape-website", s.handleScrape)
	mux.HandleFunc("/clone-website", s.handleClone)
	return requestLogger(corsMiddleware(s.CORSOrigins, mux))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody mirrors the {"detail": ...} error shape clients expect.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}
