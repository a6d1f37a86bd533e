// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey service.

# Handler Types

Each handler is a struct holding its injected dependencies:

  - PageHandler: dashboard and review pages (PageRenderer)
  - SurveyHandler: submit and list survey responses (ResponseStore)
  - HealthHandler: store liveness probe (StoreStatus)

Dependencies are small interfaces so tests can substitute failing stores:

	surveyHandler := handlers.NewSurveyHandler(rs)
	pageHandler := handlers.NewPageHandler(render.New(cfg.PagesDir))

# Pages

	GET /       → Dashboard (dashboard.html)
	GET /review → Review (review.html)

Templates receive PageData (method, path, request id) and nothing else.
A render failure is logged and answered with 500.

# Survey API

	POST /submit-survey → SubmitSurvey
	GET /get-responses  → GetResponses

SubmitSurvey validates before it touches the store: malformed JSON or an
empty question/response yields 400 with a message. Store failures are
logged and surface as 500; they are never retried or hidden.

GetResponses returns every row ordered by id; an empty store gives [].
*/
package handlers
