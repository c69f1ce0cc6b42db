package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/pageclone/internal/clone"
	"github.com/hyperifyio/pageclone/internal/fetch"
	"github.com/hyperifyio/pageclone/internal/llm"
	"github.com/hyperifyio/pageclone/internal/scrape"
	"github.com/hyperifyio/pageclone/internal/styles"
)

type stubLLM struct{ reply string }

func (s *stubLLM) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

func testServer(timeout time.Duration) *Server {
	fc := &fetch.Client{Timeout: timeout}
	return &Server{
		Summarizer: &scrape.Summarizer{Client: fc},
		Cloner: &clone.Assembler{
			Client:    fc,
			Styles:    &styles.Collector{Client: fc},
			Generator: &llm.Generator{Client: &stubLLM{reply: "<html></html>"}, Model: "test-model"},
		},
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func TestScrapeEndpoint_ReturnsSummary(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>T</title></head><body><h1>H</h1><p>P</p></body></html>`))
	}))
	defer page.Close()

	api := httptest.NewServer(testServer(5 * time.Second).Handler())
	defer api.Close()

	resp, err := http.Get(api.URL + "/scrape-website?url=" + page.URL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var sum scrape.Summary
	if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Title == nil || *sum.Title != "T" {
		t.Fatalf("unexpected title %v", sum.Title)
	}
	if len(sum.HeadingsH1) != 1 || sum.HeadingsH1[0] != "H" {
		t.Fatalf("unexpected headings %v", sum.HeadingsH1)
	}
}

func TestScrapeEndpoint_RejectsBadURL(t *testing.T) {
	api := httptest.NewServer(testServer(time.Second).Handler())
	defer api.Close()

	for _, q := range []string{"", "?url=", "?url=notaurl", "?url=ftp://x.example/"} {
		resp, err := http.Get(api.URL + "/scrape-website" + q)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", q, resp.StatusCode)
		}
	}
}

func TestScrapeEndpoint_MapsUpstream404(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer page.Close()

	api := httptest.NewServer(testServer(5 * time.Second).Handler())
	defer api.Close()

	resp, err := http.Get(api.URL + "/scrape-website?url=" + page.URL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected upstream 404 preserved, got %d", resp.StatusCode)
	}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Detail, "HTTP error fetching") {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestScrapeEndpoint_MapsTimeoutTo408(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer page.Close()

	api := httptest.NewServer(testServer(30 * time.Millisecond).Handler())
	defer api.Close()

	resp, err := http.Get(api.URL + "/scrape-website?url=" + page.URL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d", resp.StatusCode)
	}
}

func TestScrapeEndpoint_MapsUnreachableTo503(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	api := httptest.NewServer(testServer(time.Second).Handler())
	defer api.Close()

	resp, err := http.Get(api.URL + "/scrape-website?url=" + deadURL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestCloneEndpoint_ReturnsGeneratedDocument(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>content</p></body></html>`))
	}))
	defer page.Close()

	api := httptest.NewServer(testServer(5 * time.Second).Handler())
	defer api.Close()

	resp, err := http.Post(api.URL+"/clone-website", "application/json",
		strings.NewReader(`{"url":"`+page.URL+`"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var res clone.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Success || res.GeneratedHTML != "<html></html>" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.OriginalContent.Title != "Untitled" {
		t.Fatalf("expected 'Untitled' on the clone path, got %q", res.OriginalContent.Title)
	}
}

func TestCloneEndpoint_RequiresPost(t *testing.T) {
	api := httptest.NewServer(testServer(time.Second).Handler())
	defer api.Close()

	resp, err := http.Get(api.URL + "/clone-website")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	api := httptest.NewServer(testServer(time.Second).Handler())
	defer api.Close()

	req, _ := http.NewRequest(http.MethodOptions, api.URL+"/clone-website", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req, _ = http.NewRequest(http.MethodOptions, api.URL+"/clone-website", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestHealthz(t *testing.T) {
	api := httptest.NewServer(testServer(time.Second).Handler())
	defer api.Close()

	resp, err := http.Get(api.URL + "/healthz")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
