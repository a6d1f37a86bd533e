// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// sqlitePragmas are applied to every pooled connection through the DSN
var sqlitePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(FULL)",
}

// Connect opens and verifies a connection pool for the given database type
func Connect(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, dsn, err := driverDSN(dbType, url)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		if err := ensureDir(url); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

func driverDSN(dbType, url string) (driver, dsn string, err error) {
	switch dbType {
	case "sqlite":
		return "sqlite", sqliteDSN(url), nil
	case "postgres":
		return "postgres", url, nil
	default:
		return "", "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

func sqliteDSN(path string) string {
	params := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		params = append(params, "_pragma="+p)
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// ensureDir creates the parent directory of a plain SQLite file path
func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
