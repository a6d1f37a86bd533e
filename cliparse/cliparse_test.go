// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"
)

// clearEnv blanks every variable ParseFlags reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "PAGES_DIR", "LOG_LEVEL", "LOG_FORMAT", "RELOAD_TEMPLATES"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "database.db" {
		t.Errorf("expected default database.db, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.PagesDir != "pages" {
		t.Errorf("expected pages dir 'pages', got %q", cfg.PagesDir)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text log format, got %q", cfg.LogFormat)
	}
	if cfg.ReloadTemplates {
		t.Error("expected template reload to be off by default")
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("expected addr :3000, got %q", cfg.Addr())
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("PAGES_DIR", "/srv/pages")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RELOAD_TEMPLATES", "true")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected env database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.PagesDir != "/srv/pages" {
		t.Errorf("expected /srv/pages, got %q", cfg.PagesDir)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected json, got %q", cfg.LogFormat)
	}
	if !cfg.ReloadTemplates {
		t.Error("expected template reload from env")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "env.db")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "SQLite", "-pages", "web"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("database type should be normalised, got %q", cfg.DatabaseType)
	}
	if cfg.PagesDir != "web" {
		t.Errorf("expected pages dir web, got %q", cfg.PagesDir)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad PORT env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, nil},
		{"bad log format", nil, []string{"-log-format", "xml"}},
		{"bad RELOAD_TEMPLATES", map[string]string{"RELOAD_TEMPLATES": "maybe"}, nil},
		{"unknown flag", nil, []string{"--nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}
