package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pageclone/internal/fetch"
	"github.com/hyperifyio/pageclone/internal/robots"
)

// writeFetchError maps pipeline errors onto HTTP responses. Primary-fetch
// failures keep their classified kind and upstream status; everything else
// is logged with detail server-side and surfaced as an opaque internal
// error.
func writeFetchError(w http.ResponseWriter, target string, err error) {
	switch {
	case errors.Is(err, fetch.ErrTimeout):
		writeError(w, http.StatusRequestTimeout,
			fmt.Sprintf("request to %s timed out", target))
	case errors.Is(err, robots.ErrDisallowed):
		writeError(w, http.StatusForbidden,
			fmt.Sprintf("robots.txt disallows fetching %s", target))
	default:
		var se *fetch.StatusError
		if errors.As(err, &se) {
			writeError(w, se.Status,
				fmt.Sprintf("HTTP error fetching %s: %s", target, se.Reason))
			return
		}
		var te *fetch.TransportError
		if errors.As(err, &te) {
			writeError(w, http.StatusServiceUnavailable,
				fmt.Sprintf("failed to fetch URL %s: %v", target, te.Err))
			return
		}
		log.Error().Err(err).Str("url", target).Msg("unexpected internal error")
		writeError(w, http.StatusInternalServerError,
			"an unexpected error occurred, please check server logs")
	}
}
