package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"pennyledger/internal/config"
	"pennyledger/internal/export"
	pennyHttp "pennyledger/internal/http"
	exportHandler "pennyledger/internal/http/export"
	importHandler "pennyledger/internal/http/importfile"
	settingsHandler "pennyledger/internal/http/settings"
	statsHandler "pennyledger/internal/http/stats"
	txHandler "pennyledger/internal/http/transaction"
	"pennyledger/internal/importer"
	"pennyledger/internal/ledger"
	"pennyledger/internal/ledger/store"
	"pennyledger/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	notifier := ledger.NotifierFunc(func(message, severity string) {
		slog.Info("notification", "message", message, "severity", severity)
	})

	ledgerService := ledger.NewService(db, seed.Load, notifier)
	ledgerService.Load(context.Background())

	var (
		importService = importer.NewService()
		exportService = export.NewService(ledgerService)
	)

	var (
		transactionH = txHandler.NewHandler(ledgerService)
		statsH       = statsHandler.NewHandler(ledgerService)
		settingsH    = settingsHandler.NewHandler(ledgerService)
		exportH      = exportHandler.NewHandler(exportService)
		importH      = importHandler.NewHandler(importService, ledgerService)
	)

	router := pennyHttp.New(transactionH, statsH, settingsH, exportH, importH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "db", cfg.DB.Path)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
