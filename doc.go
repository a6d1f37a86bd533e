// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey server.

The server shows a dashboard page for submitting question/response pairs,
a review page for reading them back, and a small JSON API behind both,
backed by a single survey_responses table.

# Starting the Server

With defaults (SQLite file database.db, pages from ./pages, port 3000):

	go run .

Or with flags:

	go run . -p 3000 -d data/survey.db -pages ./pages

PostgreSQL works too:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: database.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PAGES_DIR (-pages): Template directory (default: pages)
  - LOG_LEVEL, LOG_FORMAT, RELOAD_TEMPLATES

# Lifecycle

On start the store is opened and the schema created if missing; existing
rows are kept. On SIGINT/SIGTERM the HTTP server drains and the store is
closed once.

# Architecture

  - handlers: HTTP request handlers (pages, survey API, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request ids, JSON helpers
  - render: html/template page rendering
  - store: survey_responses persistence
  - db: Driver selection and schema creation
  - models: Request/response types and validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
