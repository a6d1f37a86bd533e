// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /get-responses", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, size, duration_ms). Each request gets an X-Request-ID: the incoming
header when present, otherwise a new UUID. Handlers read it with:

	id := middleware.RequestID(r.Context())

# CORS Middleware

Permissive cross-origin policy, applied around the whole mux:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Every origin is accepted (echoed back, "*" when absent), the requested
method and headers are allowed, and credentials are allowed. Preflight
requests (OPTIONS with Origin and Access-Control-Request-Method) are
answered directly with 200; any other OPTIONS request reaches the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (exactly one JSON value, trailing data is an error):

	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
