// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/cliparse"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/store"
)

// Minimal page templates; they echo the request path so tests can see
// that request context reaches the template
const (
	DashboardTemplate = `<h1>dashboard</h1><p>{{.Path}}</p>`
	ReviewTemplate    = `<h1>review</h1><p>{{.Path}}</p>`
)

// GetTestConfig returns a configuration pointing at a fresh temp directory
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	dir := t.TempDir()
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  filepath.Join(dir, "database.db"),
		DatabaseType: cliparse.DatabaseSQLite,
		PagesDir:     filepath.Join(dir, "pages"),
		LogFormat:    "text",
	}
}

// SetupTestStore opens an empty SQLite-backed store for cfg
func SetupTestStore(t *testing.T, cfg cliparse.Config) *store.ResponseStore {
	t.Helper()

	rs, err := store.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return rs
}

// WritePages writes the dashboard and review templates into dir
func WritePages(t *testing.T, dir string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create pages dir: %v", err)
	}
	pages := map[string]string{
		"dashboard.html": DashboardTemplate,
		"review.html":    ReviewTemplate,
	}
	for name, body := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// CountResponses returns the number of stored rows
func CountResponses(t *testing.T, rs *store.ResponseStore) int {
	t.Helper()

	n, err := rs.Count(context.Background())
	if err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
