package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/five82/decklens/internal/config"
	"github.com/five82/decklens/internal/dashboard"
	"github.com/five82/decklens/internal/royale"
	"github.com/five82/decklens/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestModuleValidates(t *testing.T) {
	if err := fx.ValidateApp(fx.NopLogger, fx.Supply(Options{}), Module,
		fx.Invoke(func(*royale.Client, *state.Store, *dashboard.Loader, zerolog.Logger) {}),
	); err != nil {
		t.Fatalf("ValidateApp returned error: %v", err)
	}
}

func TestModuleBuildsGraphFromConfig(t *testing.T) {
	t.Setenv(config.EnvAPIBaseURL, "")
	t.Setenv(config.EnvLogLevel, "")
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "decklens.log")
	path := writeConfig(t, `
api_base_url = "http://example.test/api"
log_level = "debug"
log_file = "`+filepath.ToSlash(logFile)+`"
session_file = "`+filepath.ToSlash(filepath.Join(dir, "session.toml"))+`"
`)

	var client *royale.Client
	var loader *dashboard.Loader
	var logger zerolog.Logger
	app := fx.New(
		fx.NopLogger,
		fx.Supply(Options{ConfigPath: path}),
		Module,
		fx.Populate(&client, &loader, &logger),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("fx.New returned error: %v", err)
	}
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	if got := client.BaseURL(); got != "http://example.test/api" {
		t.Fatalf("BaseURL = %q", got)
	}
	if client.IsAuthenticated() {
		t.Fatalf("fresh session is authenticated")
	}
	if loader == nil {
		t.Fatalf("loader not provided")
	}
	logger.Info().Msg("hello")

	if err := app.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty")
	}
}

func TestModuleFailsOnInvalidLogLevel(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	path := writeConfig(t, `log_level = "loud"`)

	app := fx.New(fx.NopLogger, fx.Supply(Options{ConfigPath: path}), Module,
		fx.Populate(new(*royale.Client)))
	if app.Err() == nil {
		t.Fatalf("fx.New accepted an invalid log level")
	}
}
