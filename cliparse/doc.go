// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: database.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - PagesDir: Directory with dashboard.html and review.html (default: pages)
  - LogLevel: slog level (default: info)
  - LogFormat: text or json (default: text)
  - ReloadTemplates: Re-parse page templates per request (default: false)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-pages            Page template directory
	-log-level        Log level
	-log-format       Log format
	-reload-templates Re-parse templates on every request

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	PAGES_DIR        → -pages
	LOG_LEVEL        → -log-level
	LOG_FORMAT       → -log-format
	RELOAD_TEMPLATES → -reload-templates

CLI flags take precedence over environment variables. main loads a .env
file (if present) before ParseFlags runs, so values there behave like
regular environment variables.

# Validation

ParseFlags returns an error for unparseable or unsupported values:

  - PORT must be an integer in 1..65535
  - DATABASE_TYPE must be sqlite or postgres
  - LOG_LEVEL must be a slog level name
  - LOG_FORMAT must be text or json
*/
package cliparse
