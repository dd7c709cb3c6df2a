package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/asciimaze/mazectl/pkg/cache"
)

// memCache is an in-process cache that counts operations, so tests can
// tell a cache hit from a regeneration.
type memCache struct {
	entries map[string][]byte
	gets    int
	hits    int
	sets    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	data, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return data, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.sets++
	c.entries[key] = data
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func newTestServer(c cache.Cache) *Server {
	return New(log.New(io.Discard), c)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, newTestServer(cache.NewNullCache()), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "ok\n" {
		t.Errorf("body = %q, want %q", w.Body.String(), "ok\n")
	}
}

func TestMazeValidation(t *testing.T) {
	s := newTestServer(cache.NewNullCache())
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing width", "/maze?height=5", http.StatusBadRequest},
		{"missing height", "/maze?width=5", http.StatusBadRequest},
		{"zero width", "/maze?width=0&height=5", http.StatusBadRequest},
		{"negative height", "/maze?width=5&height=-1", http.StatusBadRequest},
		{"bad seed", "/maze?width=5&height=5&seed=abc", http.StatusBadRequest},
		{"negative seed", "/maze?width=5&height=5&seed=-1", http.StatusBadRequest},
		{"bad style", "/maze?width=5&height=5&style=fancy", http.StatusBadRequest},
		{"valid", "/maze?width=5&height=5&seed=1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := get(t, s, tt.url); w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %q)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestMazeSeededDeterminism(t *testing.T) {
	a := get(t, newTestServer(cache.NewNullCache()), "/maze?width=12&height=8&seed=42")
	b := get(t, newTestServer(cache.NewNullCache()), "/maze?width=12&height=8&seed=42")
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("status = %d, %d", a.Code, b.Code)
	}
	if a.Body.String() != b.Body.String() {
		t.Error("same seed should yield identical mazes across instances")
	}
}

func TestMazeSeededUsesCache(t *testing.T) {
	c := newMemCache()
	s := newTestServer(c)

	first := get(t, s, "/maze?width=10&height=6&seed=7")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d", first.Code)
	}
	if c.sets != 1 {
		t.Errorf("sets = %d, want 1", c.sets)
	}

	second := get(t, s, "/maze?width=10&height=6&seed=7")
	if c.hits != 1 {
		t.Errorf("hits = %d, want 1", c.hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("cached response should match the generated one")
	}
}

func TestMazeUnseededSkipsCache(t *testing.T) {
	c := newMemCache()
	s := newTestServer(c)

	if w := get(t, s, "/maze?width=10&height=6"); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if c.gets != 0 || c.sets != 0 {
		t.Errorf("unseeded request touched the cache (gets=%d, sets=%d)", c.gets, c.sets)
	}
}

func TestMazeBlockStyle(t *testing.T) {
	w := get(t, newTestServer(cache.NewNullCache()), "/maze?width=3&height=3&seed=1&style=block")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "XX") {
		t.Errorf("block maze should start with wall characters, got %q", w.Body.String()[:8])
	}
	if strings.Contains(w.Body.String(), "|") {
		t.Error("block maze should not contain ruled characters")
	}
}

func TestSolveRoundTrip(t *testing.T) {
	s := newTestServer(cache.NewNullCache())

	gen := get(t, s, "/maze?width=8&height=6&seed=3")
	if gen.Code != http.StatusOK {
		t.Fatalf("generate status = %d", gen.Code)
	}

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(gen.Body.String())))
	if w.Code != http.StatusOK {
		t.Fatalf("solve status = %d (body %q)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "XX") {
		t.Error("solved maze should carry path markers")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	text := strings.Join([]string{
		"      ______",
		"     |  |  |",
		"     |__|__|",
		"",
	}, "\n")

	w := httptest.NewRecorder()
	newTestServer(cache.NewNullCache()).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(text)))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestSolveMalformed(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer(cache.NewNullCache()).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader("garbage")))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestRequestIDEcho(t *testing.T) {
	s := newTestServer(cache.NewNullCache())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	s.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want %q", got, "fixed-id")
	}

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("server should assign a request ID when the client sends none")
	}
}
