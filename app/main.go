package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsproxy/app/api"
	"newsproxy/app/cache"
	"newsproxy/app/cfg"
	"newsproxy/app/feed"
	"newsproxy/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting news proxy", "version", appCfg.Version, "port", appCfg.Port)

	registry := sources.NewRegistry()
	if appCfg.SourcesFile != "" {
		if err := registry.LoadFile(appCfg.SourcesFile); err != nil {
			slog.Error("Failed to load sources file", "file", appCfg.SourcesFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded source overrides", "file", appCfg.SourcesFile)
	}
	slog.Info("Feed sources registered", "categories", len(registry.Categories()))

	fetcher := feed.NewFetcher(time.Duration(appCfg.FetchTimeout)*time.Second, appCfg.UserAgent)
	ttlCache := cache.New(time.Duration(appCfg.CacheTTL) * time.Second)

	handler := api.NewHandler(registry, fetcher, ttlCache)
	server := api.NewServer(handler, appCfg.Version)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
