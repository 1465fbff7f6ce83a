package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/gamestorebd/storefront/internal/config"
	"github.com/gamestorebd/storefront/internal/handlers"
	"github.com/gamestorebd/storefront/internal/session"
	"github.com/gorilla/csrf"
)

func main() {
	// Configure slog as early as possible in main.
	// TextHandler for console readability; JSONHandler might suit production.
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Backend API client — the only place domain data comes from.
	api := backend.NewClient(cfg.BackendURL)

	// 3. Session Setup
	sessions := session.NewManager(cfg.SessionKey, cfg.CookieSecure, cfg.CookieDomain)

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	templates.AddFunc("taka", func(price float64) string {
		return "৳ " + strconv.FormatFloat(price, 'f', -1, 64)
	})
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	homeHandler := &handlers.HomeHandler{Backend: api, Sessions: sessions, Templates: templates}
	gameHandler := &handlers.GameHandler{Backend: api, Sessions: sessions, Templates: templates}
	authHandler := &handlers.AuthHandler{Backend: api, Sessions: sessions, Templates: templates}
	orderHandler := &handlers.OrderHandler{Backend: api, Sessions: sessions, Templates: templates}
	adminHandler := &handlers.AdminHandler{Backend: api, Sessions: sessions, Templates: templates}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate limiter for order and auth submissions
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index) // also catches unmatched paths
	mux.HandleFunc("GET /game/{id}", gameHandler.Detail)
	mux.HandleFunc("POST /game/{id}/order", rateLimiter.Middleware(gameHandler.PlaceOrder))

	mux.HandleFunc("GET /login", authHandler.LoginGet)
	mux.HandleFunc("POST /login", rateLimiter.Middleware(authHandler.LoginPost))
	mux.HandleFunc("GET /register", authHandler.RegisterGet)
	mux.HandleFunc("POST /register", rateLimiter.Middleware(authHandler.RegisterPost))
	mux.HandleFunc("POST /logout", authHandler.Logout)

	mux.HandleFunc("GET /orders", orderHandler.MyOrders)

	// Admin Routes — advisory gating only, the backend re-checks the token.
	requireAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return handlers.RequireRole(sessions, templates, "admin", next)
	}
	mux.HandleFunc("GET /admin", requireAdmin(adminHandler.Dashboard))
	mux.HandleFunc("POST /admin/games", requireAdmin(adminHandler.CreateGame))
	mux.HandleFunc("POST /admin/orders/{id}/status", requireAdmin(adminHandler.UpdateOrderStatus))

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "backend", cfg.BackendURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
