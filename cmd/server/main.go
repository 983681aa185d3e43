package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katsura919/codely-backend/internal/config"
	"github.com/katsura919/codely-backend/internal/handlers"
	"github.com/katsura919/codely-backend/internal/router"
	"github.com/katsura919/codely-backend/internal/services"
)

func main() {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logger.Info("configuration loaded", "env", cfg.Env, "model", cfg.GeminiModel)

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		logger.Fatal("Gemini client initialization failed", "error", err)
	}
	defer geminiService.Close()
	logger.Info("Gemini client initialized")

	// ──── Step 3: Start HTTP Server ────
	generateHandler := handlers.NewGenerateHandler(geminiService)
	r := router.New(generateHandler)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation calls can run long
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("server ready", "addr", "http://"+cfg.Addr())

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "error", err)
	}
}
