// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/KpmgFuture-Academy/fa01-fin-Edo/cliparse"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/db"
	"github.com/KpmgFuture-Academy/fa01-fin-Edo/models"
)

var ErrClosed = errors.New("store is closed")

// Error wraps any failure from the underlying database
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ResponseStore persists survey responses in a single table
type ResponseStore struct {
	conn    *sql.DB
	dialect db.Dialect
	closed  atomic.Bool
}

// Open connects to the configured database and makes sure the schema exists
func Open(ctx context.Context, cfg cliparse.Config) (*ResponseStore, error) {
	dialect, err := db.DialectFor(cfg.DatabaseType)
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}

	conn, err := db.Connect(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, &Error{Op: "open", Err: err}
	}

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		_ = conn.Close()
		return nil, &Error{Op: "open", Err: err}
	}

	slog.Info("response store ready", "driver", dialect.Name, "database", cfg.DatabaseURL)

	return &ResponseStore{conn: conn, dialect: dialect}, nil
}

// Driver returns the name of the database driver in use
func (s *ResponseStore) Driver() string {
	return s.dialect.Name
}

// Insert stores one response and returns its id.
// The single statement runs in autocommit mode, so it is durable on return.
func (s *ResponseStore) Insert(ctx context.Context, question, response string) (int64, error) {
	if s.closed.Load() {
		return 0, &Error{Op: "insert", Err: ErrClosed}
	}

	var id int64
	err := s.conn.QueryRowContext(ctx, s.dialect.Insert, question, response).Scan(&id)
	if err != nil {
		return 0, &Error{Op: "insert", Err: err}
	}

	return id, nil
}

// ListAll returns every stored response ordered by id
func (s *ResponseStore) ListAll(ctx context.Context) ([]models.SurveyResponse, error) {
	if s.closed.Load() {
		return nil, &Error{Op: "list", Err: ErrClosed}
	}

	rows, err := s.conn.QueryContext(ctx, s.dialect.List)
	if err != nil {
		return nil, &Error{Op: "list", Err: err}
	}
	defer rows.Close()

	responses := []models.SurveyResponse{}
	for rows.Next() {
		var (
			row      models.SurveyResponse
			question sql.NullString
			response sql.NullString
		)
		if err := rows.Scan(&row.ID, &question, &response); err != nil {
			return nil, &Error{Op: "list", Err: err}
		}
		// Rows written out-of-band may hold NULLs
		row.Question = question.String
		row.Response = response.String
		responses = append(responses, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "list", Err: err}
	}

	return responses, nil
}

// Count returns the number of stored responses
func (s *ResponseStore) Count(ctx context.Context) (int, error) {
	if s.closed.Load() {
		return 0, &Error{Op: "count", Err: ErrClosed}
	}

	var n int
	if err := s.conn.QueryRowContext(ctx, s.dialect.Count).Scan(&n); err != nil {
		return 0, &Error{Op: "count", Err: err}
	}
	return n, nil
}

// Ping verifies the database is reachable
func (s *ResponseStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return &Error{Op: "ping", Err: ErrClosed}
	}
	if err := s.conn.PingContext(ctx); err != nil {
		return &Error{Op: "ping", Err: err}
	}
	return nil
}

// Close releases the connection pool. Only the first call closes it.
func (s *ResponseStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return &Error{Op: "close", Err: ErrClosed}
	}
	if err := s.conn.Close(); err != nil {
		return &Error{Op: "close", Err: err}
	}
	return nil
}
