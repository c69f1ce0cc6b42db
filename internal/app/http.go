package app

import (
	"net"
	"net/http"
	"time"
)

// newFetchHTTPClient returns the shared client for page and stylesheet
// fetches. Per-request deadlines come from fetch.Client; the transport only
// bounds dial and TLS handshake so a dead host fails fast.
func newFetchHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: transport}
}

// newLLMHTTPClient tolerates the long generation times of the collaborator.
func newLLMHTTPClient() *http.Client {
	return &http.Client{Timeout: 120 * time.Second}
}
