// Package robots performs a courtesy robots.txt check before the primary
// page fetch. Failures to obtain or parse robots.txt are permissive; only an
// explicit disallow blocks the scrape.
package robots

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// ErrDisallowed reports that the target's robots.txt forbids fetching the
// requested path for our agent.
var ErrDisallowed = errors.New("disallowed by robots.txt")

const defaultExpiry = time.Hour

// Manager fetches and caches per-host robots.txt rules in memory for the
// lifetime of the process. The cache holds rules only, never page content.
type Manager struct {
	HTTPClient *http.Client
	UserAgent  string
	// AgentToken is the product token matched against robots.txt groups.
	AgentToken string
	// EntryExpiry bounds how long cached rules are trusted. Zero means 1h.
	EntryExpiry time.Duration

	mu  sync.Mutex
	mem map[string]entry
	now func() time.Time
}

type entry struct {
	data   *robotstxt.RobotsData
	expiry time.Time
}

// Check returns ErrDisallowed (wrapped with the URL) when robots.txt forbids
// fetching pageURL, nil otherwise.
func (m *Manager) Check(ctx context.Context, pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil
	}
	data := m.rules(ctx, u.Scheme+"://"+u.Host)
	if data == nil {
		return nil
	}
	token := m.AgentToken
	if token == "" {
		token = "pageclone"
	}
	group := data.FindGroup(token)
	if group == nil {
		return nil
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if !group.Test(path) {
		return fmt.Errorf("%s: %w", pageURL, ErrDisallowed)
	}
	return nil
}

func (m *Manager) rules(ctx context.Context, origin string) *robotstxt.RobotsData {
	m.mu.Lock()
	if m.now == nil {
		m.now = time.Now
	}
	if m.mem == nil {
		m.mem = make(map[string]entry)
	}
	if e, ok := m.mem[origin]; ok && m.now().Before(e.expiry) {
		m.mu.Unlock()
		return e.data
	}
	m.mu.Unlock()

	data := m.fetch(ctx, origin)

	expiry := m.EntryExpiry
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	m.mu.Lock()
	m.mem[origin] = entry{data: data, expiry: m.now().Add(expiry)}
	m.mu.Unlock()
	return data
}

func (m *Manager) fetch(ctx context.Context, origin string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	if m.UserAgent != "" {
		req.Header.Set("User-Agent", m.UserAgent)
	}
	client := m.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return data
}
