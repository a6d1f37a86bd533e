// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/models"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/testutil"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	cfg := testutil.GetTestConfig(t)
	testutil.WritePages(t, cfg.PagesDir)

	rs := testutil.SetupTestStore(t, cfg)
	t.Cleanup(func() { rs.Close() })

	return NewRouter(rs, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := setup(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
}

func TestPageEndpoints(t *testing.T) {
	mux := setup(t)

	testCases := []struct {
		path    string
		heading string
	}{
		{"/", "<h1>dashboard</h1>"},
		{"/review", "<h1>review</h1>"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", tc.path, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), tc.heading) {
				t.Errorf("Expected %q in body, got %s", tc.heading, w.Body.String())
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("Expected X-Request-ID on page responses")
			}
		})
	}
}

func TestPageEndpoints_MissingTemplates(t *testing.T) {
	cfg := testutil.GetTestConfig(t)
	rs := testutil.SetupTestStore(t, cfg)
	defer rs.Close()
	mux := NewRouter(rs, cfg)

	for _, path := range []string{"/", "/review"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		testutil.AssertStatus(t, w, http.StatusInternalServerError)
	}

	// The API keeps working
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/get-responses", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestSubmitAndList(t *testing.T) {
	mux := setup(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/submit-survey",
		models.SubmitSurveyRequest{Question: "Do you like it?", Response: "Yes"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var ack models.SubmitSurveyResponse
	testutil.AssertJSON(t, w, &ack)
	if ack.Message != models.MessageSaved {
		t.Errorf("Expected %q, got %q", models.MessageSaved, ack.Message)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/get-responses", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	want := `[{"id":1,"question":"Do you like it?","response":"Yes"}]`
	if body := strings.TrimSpace(w.Body.String()); body != want {
		t.Errorf("Expected %s, got %s", want, body)
	}
}

func TestSubmitRejectsEmptyQuestion(t *testing.T) {
	mux := setup(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/submit-survey",
		models.SubmitSurveyRequest{Question: "", Response: "Yes"}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/get-responses", nil))
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Store should stay empty, got %s", body)
	}
}

func TestUnknownPath(t *testing.T) {
	mux := setup(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/does-not-exist", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setup(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/submit-survey"},
		{"POST", "/get-responses"},
		{"DELETE", "/review"},
		{"PUT", "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestCORSOnRoutes(t *testing.T) {
	mux := setup(t)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/submit-survey", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected origin to be echoed")
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("Expected credentials to be allowed")
		}
	})

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/get-responses", nil)
		req.Header.Set("Origin", "https://other.example")
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("Access-Control-Allow-Origin") != "https://other.example" {
			t.Error("Expected any origin to be allowed")
		}
	})
}

func TestOptionsWithoutPreflight(t *testing.T) {
	mux := setup(t)

	testCases := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{"known path, no headers", "/submit-survey", nil, http.StatusMethodNotAllowed},
		{"known path, origin only", "/get-responses", map[string]string{"Origin": "http://localhost:5173"}, http.StatusMethodNotAllowed},
		{"unknown path", "/does-not-exist", map[string]string{"Origin": "http://localhost:5173"}, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest("OPTIONS", tc.path, nil, tc.headers))

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}
