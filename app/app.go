// File: app/app.go
package app

import (
	"os"
	"os/signal"
	"syscall"

	"go-bank-ledger/cli"
	"go-bank-ledger/config"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// --- Wiring All Layers Together ---
	// The store loads the persisted ledger at startup; the services operate
	// on the in-memory ledger and write back through the store.

	store := repository.NewFileStore(config.AppConfig.Store.Path)
	ledger, err := store.Load()
	if err != nil {
		logger.Log.Fatalf("Error loading ledger: %v", err)
	}
	logger.Log.WithField("accounts", ledger.Count()).Info("Ledger ready")

	accountService := service.NewAccountService(ledger, store)
	authService := service.NewAuthService(ledger)

	front := cli.New(accountService, authService, os.Stdin, os.Stdout)

	// The ledger is saved on a normal menu exit and on SIGINT/SIGTERM, so a
	// Ctrl+C session does not lose the accounts.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Log.Warn("Shutdown signal received, saving ledger")
		if err := accountService.SaveAll(); err != nil {
			logger.Log.WithError(err).Error("Failed to save ledger on shutdown")
			os.Exit(1)
		}
		os.Exit(0)
	}()

	front.Run()

	if err := accountService.SaveAll(); err != nil {
		logger.Log.WithError(err).Error("Failed to save ledger on exit")
		os.Exit(1)
	}
	logger.Log.Info("Ledger saved, exiting")
}
