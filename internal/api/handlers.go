package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "pageclone is running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScrape serves GET /scrape-website?url=... and returns the simple
// extraction: title, H1 headings, and paragraphs.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	target, ok := validatedURL(w, r.URL.Query().Get("url"))
	if !ok {
		return
	}
	sum, err := s.Summarizer.Summarize(r.Context(), target)
	if err != nil {
		writeFetchError(w, target, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

type cloneRequest struct {
	URL string `json:"url"`
}

// handleClone serves POST /clone-website with body {"url": ...} and runs the
// full clone pipeline.
func (s *Server) handleClone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var req cloneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	target, ok := validatedURL(w, req.URL)
	if !ok {
		return
	}
	res, err := s.Cloner.Clone(r.Context(), target)
	if err != nil {
		writeFetchError(w, target, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// validatedURL rejects anything that is not an absolute http(s) URL before
// it reaches the core. Writes the error response itself on failure.
func validatedURL(w http.ResponseWriter, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing url parameter")
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		writeError(w, http.StatusBadRequest, "url must be an absolute http(s) URL")
		return "", false
	}
	return raw, true
}
