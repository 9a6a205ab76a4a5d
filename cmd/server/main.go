package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"quoteboard/internal/api/middleware"
	"quoteboard/internal/api/routes"
	"quoteboard/internal/auth"
	"quoteboard/internal/config"
	"quoteboard/internal/core/quotes"
	"quoteboard/internal/core/users"
	"quoteboard/internal/core/votes"
	"quoteboard/internal/db/migrations"
	postgresRepo "quoteboard/internal/db/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	logger.Info("connected to database")

	// Run migrations from the embedded SQL files
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("failed to set goose dialect", "error", err)
		os.Exit(1)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations completed")

	// Repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	quoteRepo := postgresRepo.NewQuoteRepository(db)
	voteRepo := postgresRepo.NewVoteRepository(db)

	userService := users.NewUserService(userRepo, logger)
	quoteService := quotes.NewQuoteService(quoteRepo, logger)
	voteService := votes.NewVoteService(voteRepo, quoteRepo, logger)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	authMiddleware := middleware.NewAuthMiddleware(tokens, store)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	r.Use(rateLimiter.Middleware)

	routes.RegisterAuthRoutes(r, userService, tokens, store, cfg.SecureCookies)
	routes.RegisterQuoteRoutes(r, quoteService, voteService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	logger.Info("quoteboard starting", "port", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
