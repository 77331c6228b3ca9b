// Package main is the entry point for the tours site server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/config"
	"github.com/wanderpeak/tours/internal/handler"
	"github.com/wanderpeak/tours/internal/middleware"
	"github.com/wanderpeak/tours/internal/render"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	// Everything below is loaded once and never mutated, so it is shared
	// by all request goroutines without locking.
	var cat *catalog.Static
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		slog.Error("failed to load destination catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	highlights, err := catalog.DefaultHighlights()
	if err != nil {
		slog.Error("failed to load landing highlights", "error", err)
		os.Exit(1)
	}
	icons, err := catalog.DefaultIcons()
	if err != nil {
		slog.Error("failed to load icon set", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded",
		"destinations", len(cat.ListDestinations()),
		"highlights", len(highlights.ListHighlights()),
	)

	pages, err := render.Default(icons, render.WithPretty(cfg.PrettyHTML))
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	srvHandler := handler.NewServer(handler.Deps{
		Catalog:    cat,
		Highlights: highlights,
		Icons:      icons,
		Pages:      pages,
		BaseURL:    cfg.BaseURL,
		Logger:     logger,
	})
	r := newRouter(cfg, logger, srvHandler)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newRouter applies the global middleware stack to the site routes.
// Order: RequestID → RealIP → Logger → Recoverer → body limit → compression.
// Every route is a GET, so the body limit turns away oversized requests of
// any method with 413 before routing. CORS wraps the /api subtree only.
func newRouter(cfg config.Config, logger *slog.Logger, srv *handler.Server) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewCompressor(5))

	r.Mount("/", srv.Routes(middleware.NewCORSHandler(cfg.CORSOrigins)))
	return r
}
