// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect holds the SQL text that differs between drivers
type Dialect struct {
	Name   string
	Schema string
	Insert string
	List   string
	Count  string
}

var sqliteDialect = Dialect{
	Name: "sqlite",
	Schema: `
CREATE TABLE IF NOT EXISTS survey_responses (
    id INTEGER PRIMARY KEY,
    question TEXT,
    response TEXT
);
`,
	Insert: `INSERT INTO survey_responses (question, response) VALUES (?, ?) RETURNING id`,
	List:   `SELECT id, question, response FROM survey_responses ORDER BY id`,
	Count:  `SELECT COUNT(*) FROM survey_responses`,
}

var postgresDialect = Dialect{
	Name: "postgres",
	Schema: `
CREATE TABLE IF NOT EXISTS survey_responses (
    id SERIAL PRIMARY KEY,
    question TEXT,
    response TEXT
);
`,
	Insert: `INSERT INTO survey_responses (question, response) VALUES ($1, $2) RETURNING id`,
	List:   `SELECT id, question, response FROM survey_responses ORDER BY id`,
	Count:  `SELECT COUNT(*) FROM survey_responses`,
}

// DialectFor returns the SQL dialect for a database type
func DialectFor(dbType string) (Dialect, error) {
	switch dbType {
	case "sqlite":
		return sqliteDialect, nil
	case "postgres":
		return postgresDialect, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates the survey_responses table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	_, err := db.ExecContext(ctx, d.Schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
