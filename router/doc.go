// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey service.

# Route Registration

NewRouter creates the handler tree with all endpoints:

	handler := router.NewRouter(rs, cfg)

# Endpoints

	GET  /               - Dashboard page
	GET  /review         - Review page
	POST /submit-survey  - Store one question/response pair
	GET  /get-responses  - List all stored pairs
	GET  /health         - Store liveness

"/" is registered as an exact match, so unknown paths return 404. Routes
are method-specific; other methods return 405.

The mux is wrapped in middleware.CORS, which allows every origin, method
and header with credentials.
*/
package router
