package robots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestCheck_DisallowedPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	defer srv.Close()

	m := &Manager{HTTPClient: srv.Client(), AgentToken: "pageclone"}
	if err := m.Check(context.Background(), srv.URL+"/private/page"); !errors.Is(err, ErrDisallowed) {
		t.Fatalf("expected ErrDisallowed, got %v", err)
	}
	if err := m.Check(context.Background(), srv.URL+"/public/page"); err != nil {
		t.Fatalf("expected allowed, got %v", err)
	}
}

func TestCheck_PermissiveWhenRobotsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	m := &Manager{}
	if err := m.Check(context.Background(), url+"/anything"); err != nil {
		t.Fatalf("expected permissive on fetch failure, got %v", err)
	}
}

func TestCheck_CachesRulesPerHost(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("User-agent: *\nDisallow:\n"))
	}))
	defer srv.Close()

	m := &Manager{HTTPClient: srv.Client()}
	for i := 0; i < 3; i++ {
		if err := m.Check(context.Background(), srv.URL+"/page"); err != nil {
			t.Fatalf("check %d: %v", i, err)
		}
	}
	if hits != 1 {
		t.Fatalf("expected one robots.txt fetch, got %d", hits)
	}
}

func TestCheck_ConcurrentSharedManager(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	defer srv.Close()

	m := &Manager{HTTPClient: srv.Client()}
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.Check(context.Background(), srv.URL+"/public/page")
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}
}

func TestCheck_InvalidURLIsPermissive(t *testing.T) {
	m := &Manager{}
	if err := m.Check(context.Background(), "::not-a-url"); err != nil {
		t.Fatalf("expected nil for unparseable url, got %v", err)
	}
}
