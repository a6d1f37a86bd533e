// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Connect picks the driver from the configured database type and pings it:

	conn, err := db.Connect(ctx, "sqlite", "database.db")

Supported types:

  - sqlite: modernc.org/sqlite, file-backed (pragmas busy_timeout, WAL, synchronous=FULL)
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes the single table:

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call on every start - uses IF NOT EXISTS and never drops data.

# Tables

	survey_responses (
	    id       INTEGER PRIMARY KEY   -- SERIAL on postgres
	    question TEXT
	    response TEXT
	)

Columns carry no NOT NULL constraint; non-empty values are enforced by the
HTTP layer.

# Dialects

DialectFor returns the per-driver SQL (placeholder style, id column type)
used by the store package.
*/
package db
