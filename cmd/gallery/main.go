package main

import (
	"context"
	"flag"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/azupp/thumbgallery/internal/browse"
	"github.com/azupp/thumbgallery/internal/config"
	apphttp "github.com/azupp/thumbgallery/internal/http"
	"github.com/azupp/thumbgallery/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{})))

	// Flags
	var confPath string
	var port string
	flag.StringVar(&confPath, "config", "data/conf.ini", "ini configuration file (optional)")
	flag.StringVar(&port, "port", "", "port to listen on (overrides config and PORT env)")
	flag.Parse()

	cfg, err := config.Load(confPath)
	if err != nil {
		slog.Error("load config", "path", confPath, "err", err)
		os.Exit(1)
	}
	if port == "" {
		// allow the conventional env var as a fallback
		port = os.Getenv("PORT")
	}
	if port != "" {
		cfg.Set(config.KeyServerPort, port)
	}

	level := slog.LevelInfo
	gin.SetMode(gin.ReleaseMode)
	if cfg.Debug() {
		level = slog.LevelDebug
		gin.SetMode(gin.DebugMode)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cat, err := openCatalog(cfg.DataFile())
	if err != nil {
		slog.Error("load catalog", "file", cfg.DataFile(), "err", err)
		os.Exit(1)
	}
	tabs := cfg.Years()
	if hidden := browse.HiddenYears(cat, tabs); len(hidden) > 0 {
		slog.Warn("catalog years without a gallery tab", "years", hidden, "tabs", tabs)
	}
	slog.Info("catalog loaded", "videos", cat.Len(), "years", cat.Years())

	mux := apphttp.NewServer(cat, apphttp.Options{
		Tabs:        tabs,
		DefaultYear: cfg.DefaultYear(),
		EmbedHost:   cfg.EmbedHost(),
		BaseURL:     cfg.BaseURL(),
	})

	addr := ":" + cfg.Port()

	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		slog.Error("listen failed", "err", err)
		os.Exit(1)
	}
	slog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("graceful shutdown failed", "err", err)
		_ = srv.Close()
	}
	slog.Info("server stopped")
}

// openCatalog returns the embedded catalog unless path names an external one.
func openCatalog(path string) (*store.Store, error) {
	if path == "" {
		return store.Embedded()
	}
	return store.LoadFile(path)
}
