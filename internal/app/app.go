// Package app wires configuration, storage, services and the HTTP
// server into a running process.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	"github.com/socialblog/backend/internal/adapter/mailer"
	"github.com/socialblog/backend/internal/adapter/media"
	"github.com/socialblog/backend/internal/adapter/postgres"
	categoryrepo "github.com/socialblog/backend/internal/adapter/postgres/category"
	commentrepo "github.com/socialblog/backend/internal/adapter/postgres/comment"
	postrepo "github.com/socialblog/backend/internal/adapter/postgres/post"
	userrepo "github.com/socialblog/backend/internal/adapter/postgres/user"
	internalauth "github.com/socialblog/backend/internal/auth"
	"github.com/socialblog/backend/internal/config"
	"github.com/socialblog/backend/internal/loader"
	authsvc "github.com/socialblog/backend/internal/service/auth"
	categorysvc "github.com/socialblog/backend/internal/service/category"
	commentsvc "github.com/socialblog/backend/internal/service/comment"
	feedsvc "github.com/socialblog/backend/internal/service/feed"
	postsvc "github.com/socialblog/backend/internal/service/post"
	usersvc "github.com/socialblog/backend/internal/service/user"
	"github.com/socialblog/backend/internal/transport/middleware"
	"github.com/socialblog/backend/internal/transport/rest"
)

// App bundles the wired application: storage, services and the HTTP
// server. Construct it with New and drive it with Run.
type App struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	server *http.Server

	limiter *middleware.RateLimiter

	Auth       *authsvc.Service
	Users      *usersvc.Service
	Posts      *postsvc.Service
	Comments   *commentsvc.Service
	Categories *categorysvc.Service
	Feed       *feedsvc.Service
}

// New loads configuration, applies migrations and wires every layer.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := applyMigrations(ctx, cfg.Database); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	mediaStore, err := media.New(cfg.Media.RootDir, cfg.Media.BaseURL, cfg.Media.MaxSizeBytes)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init media store: %w", err)
	}

	users := userrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	categories := categoryrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := internalauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	mail := mailer.New(cfg.Mail)

	a := &App{
		cfg:        cfg,
		log:        logger,
		pool:       pool,
		Auth:       authsvc.NewService(logger, cfg.Auth, users, jwtManager, mail, tx),
		Users:      usersvc.NewService(logger, users, posts, mediaStore),
		Posts:      postsvc.NewService(logger, posts, categories, users, mediaStore),
		Comments:   commentsvc.NewService(logger, comments, posts, users, mediaStore),
		Categories: categorysvc.NewService(logger, categories, users, mediaStore),
		Feed:       feedsvc.NewService(logger, posts, users),
	}

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	authHandler := rest.NewAuthHandler(a.Auth, logger)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/password/forgot", authHandler.RequestPasswordReset)
	mux.HandleFunc("POST /auth/password/reset", authHandler.ResetPassword)

	adminHandler := rest.NewAdminHandler(a.Posts, logger)
	mux.HandleFunc("POST /admin/posts/{id}/block", adminHandler.BlockPost)
	mux.HandleFunc("POST /admin/posts/{id}/unblock", adminHandler.UnblockPost)

	a.limiter = middleware.NewRateLimiter(time.Minute)
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		a.limiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(tokenValidator{jwt: jwtManager}),
		loader.Middleware(users, categories, comments),
	)(mux)

	a.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return a, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	defer a.pool.Close()
	defer a.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// tokenValidator adapts the JWT manager to the auth middleware.
type tokenValidator struct {
	jwt *internalauth.JWTManager
}

func (v tokenValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.jwt.ValidateAccessToken(token)
}

func applyMigrations(ctx context.Context, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("sql open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
