package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/investifykids/investify-backend/internal/adapter/glossary"
	"github.com/investifykids/investify-backend/internal/adapter/httpapi"
	"github.com/investifykids/investify-backend/internal/adapter/pricing"
	"github.com/investifykids/investify-backend/internal/config"
	"github.com/investifykids/investify-backend/internal/domain"
	"github.com/investifykids/investify-backend/internal/usecase/education"
	"github.com/investifykids/investify-backend/internal/usecase/ledger"
	"github.com/investifykids/investify-backend/internal/usecase/quest"
	"github.com/investifykids/investify-backend/internal/usecase/registration"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	// 1. Load configuration (built-in mock data when no file is given)
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		cfg = loaded
	}

	startingCash, err := cfg.DecimalStartingCash()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	prices, err := cfg.DecimalPrices()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// 2. Initialize Adapters (static reference data)
	oracle := pricing.NewStaticOracle(prices)
	terms := glossary.NewStaticGlossary(cfg.Terms)

	// 3. Initialize Services (Use Cases)
	questTracker := quest.NewTracker()
	ledgerService := ledger.NewLedgerService(oracle, questTracker)
	registrationService := registration.NewRegistrationService(questTracker)
	educationService := education.NewEducationService(oracle, terms, questTracker)

	// 4. Create the single session and start the HTTP server
	session := domain.NewSession(startingCash)
	server := httpapi.NewServer(session, ledgerService, registrationService, educationService, questTracker)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(httpServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}
