package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mgeraldo/contact-book/internal/config"
	"github.com/mgeraldo/contact-book/internal/logger"
	"github.com/mgeraldo/contact-book/internal/transport/http/router"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:              "dev",
		HTTPAddr:         ":0",
		JWTSecret:        "test-secret",
		JWTIssuer:        "contact-book",
		AccessTokenTTL:   15 * time.Minute,
		BcryptCost:       4,
		DBAddr:           "postgres://test",
		HTTPReadTimeout:  5 * time.Second,
		HTTPWriteTimeout: 5 * time.Second,
		HTTPIdleTimeout:  time.Minute,
	}
}

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		LoadConfig: func() (*config.Config, error) { return testConfig(), nil },
		NewDB: func(dsn string) (*sql.DB, error) {
			db, _, err := sqlmock.New()
			return db, err
		},
		Migrate:   nil, // skipped in tests
		NewRouter: router.New,
	}
}

func TestNewServer_WiresEverything(t *testing.T) {
	t.Parallel()

	srv, cleanup, err := NewServerWithDeps(testDeps(t))
	if err != nil {
		t.Fatalf("bootstrap err: %v", err)
	}
	defer cleanup()

	if srv.Addr != ":0" {
		t.Fatalf("unexpected addr %q", srv.Addr)
	}
	if srv.Handler == nil {
		t.Fatalf("expected wired handler")
	}
	if srv.ReadTimeout != 5*time.Second || srv.IdleTimeout != time.Minute {
		t.Fatalf("timeouts not applied: %+v", srv)
	}
}

func TestNewServer_ConfigError_Propagates(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	deps.LoadConfig = func() (*config.Config, error) { return nil, errors.New("missing JWT_SECRET") }

	_, _, err := NewServerWithDeps(deps)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewServer_DBError_Propagates(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	deps.NewDB = func(dsn string) (*sql.DB, error) { return nil, errors.New("connection refused") }

	_, _, err := NewServerWithDeps(deps)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewServer_MigrateError_CleansUp(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	deps.Migrate = func(ctx context.Context, db *sql.DB) error { return errors.New("schema broken") }

	_, _, err := NewServerWithDeps(deps)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewServer_HandlerServesHealthz(t *testing.T) {
	t.Parallel()

	srv, cleanup, err := NewServerWithDeps(testDeps(t))
	if err != nil {
		t.Fatalf("bootstrap err: %v", err)
	}
	defer cleanup()

	// exercise the wired mux directly
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
