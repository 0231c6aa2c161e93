package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/mgeraldo/contact-book/internal/application/auth"
	"github.com/mgeraldo/contact-book/internal/application/contacts"
	"github.com/mgeraldo/contact-book/internal/config"
	"github.com/mgeraldo/contact-book/internal/infrastructure/db/postgres"
	"github.com/mgeraldo/contact-book/internal/infrastructure/security"
	"github.com/mgeraldo/contact-book/internal/logger"
	http_handlers "github.com/mgeraldo/contact-book/internal/transport/http/handlers"
	"github.com/mgeraldo/contact-book/internal/transport/http/middleware"
	"github.com/mgeraldo/contact-book/internal/transport/http/response"
	"github.com/mgeraldo/contact-book/internal/transport/http/router"
)

// NewServer wires the production server.
func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewDB      func(dsn string) (*sql.DB, error)
	Migrate    func(ctx context.Context, db *sql.DB) error
	NewRouter  func(router.Deps) (http.Handler, error)
}

func newServer(deps Deps) (*http.Server, func(), error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if deps.Migrate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := deps.Migrate(ctx, db); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	userRepo := postgres.NewUserRepo(db)
	contactRepo := postgres.NewContactRepo(db)

	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	contactSvc := contacts.NewService(contactRepo)

	authH := http_handlers.NewAuthHandler(authSvc)
	contactsH := http_handlers.NewContactsHandler(contactSvc)
	healthH := http_handlers.NewHealthHandler(db)

	authMW := middleware.Auth(signer, response.WriteError)

	mux, err := deps.NewRouter(router.Deps{
		Health:   healthH,
		Auth:     authH,
		Contacts: contactsH,
		AuthMW:   authMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() { runCleanup(cleanupFns) }
	return srv, cleanup, nil
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(dsn string) (*sql.DB, error) {
			return config.NewDB(dsn)
		},
		Migrate: func(ctx context.Context, db *sql.DB) error {
			return postgres.RunMigrations(ctx, db)
		},
		NewRouter: router.New,
	}
}

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
