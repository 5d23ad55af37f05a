package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkread/inkread/internal/logging"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(baseURL string, tokens TokenSource) *Client {
	return NewClient(ClientConfig{
		BaseURL: baseURL,
		Tokens:  tokens,
		Logger:  logging.Discard(),
	})
}

func TestGetAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, staticTokens("tok-1"))
	if _, err := client.Get(context.Background(), "/books", nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-1")
	}
	if gotRequestID == "" {
		t.Error("Expected X-Request-ID header on every request")
	}
}

func TestGetWithoutTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, staticTokens(""))
	if _, err := client.Get(context.Background(), "/books", nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if sawHeader || gotAuth != "" {
		t.Errorf("Authorization = %q, want header absent", gotAuth)
	}
}

func TestGetOmitsEmptyParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.Get(context.Background(), "/search", Params{
		"q":        "sword",
		"category": "",
		"author":   nil,
		"page":     1,
	})
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	parsed, _ := http.NewRequest(http.MethodGet, "http://x/?"+gotQuery, nil)
	query := parsed.URL.Query()
	if _, ok := query["category"]; ok {
		t.Errorf("Query %q should not contain empty category", gotQuery)
	}
	if _, ok := query["author"]; ok {
		t.Errorf("Query %q should not contain nil author", gotQuery)
	}
	if query.Get("q") != "sword" || query.Get("page") != "1" {
		t.Errorf("Query = %q, want q=sword and page=1", gotQuery)
	}
}

func TestNonSuccessStatusYieldsHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"book not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.Get(context.Background(), "/books/999", nil)

	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want HTTPStatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", statusErr.StatusCode)
	}
	if statusErr.Message != "book not found" {
		t.Errorf("Message = %q, want backend message", statusErr.Message)
	}
}

func TestEnvelopeFailureYieldsHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"quota exceeded"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.Get(context.Background(), "/rankings/books", nil)

	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want HTTPStatusError for success:false envelope", err)
	}
	if statusErr.Message != "quota exceeded" {
		t.Errorf("Message = %q, want %q", statusErr.Message, "quota exceeded")
	}
}

func TestUnreachableBackendYieldsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client := newTestClient(server.URL, nil)
	_, err := client.Get(context.Background(), "/books", nil)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
}

func TestSlowBackendYieldsTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  logging.Discard(),
	})

	_, err := client.Get(context.Background(), "/books", nil)

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("err = %v, want TimeoutError", err)
	}
	if timeoutErr.Budget != 50*time.Millisecond {
		t.Errorf("Budget = %v, want 50ms", timeoutErr.Budget)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.Post(context.Background(), "/auth/login", map[string]string{"username": "u"})
	if err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if string(gotBody) != `{"username":"u"}` {
		t.Errorf("Body = %s, want JSON payload", gotBody)
	}
}

func TestEnvelopeDecodeAndPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": [{"id": 1, "title": "One"}],
			"pagination": {"current_page": 2, "total_pages": 5, "total_items": 41, "per_page": 10}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	envelope, err := client.Get(context.Background(), "/books", nil)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	var items []struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	if err := envelope.Decode(&items); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "One" {
		t.Errorf("Decoded items = %+v, want one item titled One", items)
	}

	if envelope.Pagination == nil {
		t.Fatal("Expected pagination metadata")
	}
	if envelope.Pagination.CurrentPage != 2 || envelope.Pagination.TotalItems != 41 {
		t.Errorf("Pagination = %+v", envelope.Pagination)
	}
}

func TestContextCancellationIsNotTimeout(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Get(ctx, "/books", nil)
	if err == nil {
		t.Fatal("Expected error from canceled request")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("err = %v, want NetworkError for explicit cancellation", err)
	}
}
