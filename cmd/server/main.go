// Package main is the entry point for the docukit API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docukit/internal/domain/documents"
	v1 "docukit/internal/infrastructure/http/v1"
	"docukit/internal/infrastructure/storage/sqlite"
	"docukit/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting docukit server")

	// --- Database ---
	dbPath := getEnv("DB_PATH", "docukit.db")
	db, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer db.Close()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		log.Fatalw("failed to initialize schema", "error", err)
	}
	log.Infow("database ready", "path", dbPath)

	// --- Document context service ---
	service := documents.NewService(documents.Config{
		Companies: sqlite.NewCompanyRepo(db),
		Clients:   sqlite.NewClientRepo(db),
		Projects:  sqlite.NewProjectRepo(db),
		Orders:    sqlite.NewOrderRepo(db),
		Products:  sqlite.NewProductRepo(db),
		Notes:     sqlite.NewNoteRepo(db),
		Paths: documents.Paths{
			AppRoot:    getEnv("APP_ROOT", "."),
			LogoSubdir: getEnv("LOGO_SUBDIR", "assets/logos"),
			MediaBase:  getEnv("MEDIA_BASE", "media"),
		},
	})

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		DB:        db,
		Logger:    log,
		Documents: service,
	})

	// --- HTTP Server ---
	addr := getEnv("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
