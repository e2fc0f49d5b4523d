package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"dairy-backend/internal/auth"
	"dairy-backend/internal/config"
	"dairy-backend/internal/handlers"
	"dairy-backend/internal/health"
	h "dairy-backend/internal/http"
	"dairy-backend/internal/ledger"
	"dairy-backend/internal/middleware"
	"dairy-backend/internal/monitoring"
	"dairy-backend/internal/services"
	"dairy-backend/internal/store"
)

// openStorage picks the configured storage backend. Redis and Postgres
// fall back to the file backend when unreachable so the vendor can
// keep billing while infrastructure is down.
func openStorage(cfg *config.Config) store.Storage {
	switch cfg.Storage.Backend {
	case "redis":
		s, err := store.NewRedisStorage(cfg.Storage.RedisAddr, cfg.Storage.RedisPass)
		if err != nil {
			log.Printf("[Storage] Redis unavailable (%v), falling back to file backend", err)
			break
		}
		log.Printf("[Storage] Using Redis backend at %s", cfg.Storage.RedisAddr)
		return s
	case "postgres":
		s, err := store.NewPostgresStorage(cfg.Storage.PostgresURL)
		if err != nil {
			log.Printf("[Storage] Postgres unavailable (%v), falling back to file backend", err)
			break
		}
		log.Println("[Storage] Using Postgres backend")
		return s
	case "memory":
		log.Println("[Storage] Using in-memory backend (data is lost on exit)")
		return store.NewMemoryStorage()
	}

	log.Printf("[Storage] Using file backend at %s", cfg.Storage.FilePath)
	return store.NewFileStorage(cfg.Storage.FilePath)
}

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Open storage and load the ledger document
	storage := openStorage(cfg)
	ledgerService, err := ledger.NewService(context.Background(), storage)
	if err != nil {
		log.Fatalf("Failed to load ledger document: %v", err)
	}

	// Health checker and monitoring dashboard
	healthChecker := health.NewHealthChecker(storage)
	go monitoring.NewMonitoringServer(ledgerService, healthChecker, cfg.Server.MonitoringPort).Start()

	// JWT manager and middleware
	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	// Collaborator services
	pdfService := services.NewPDFService(cfg.UPI.PayeeName)
	razorpayService := services.NewRazorpayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	var backupService *services.BackupService
	if cfg.Backup.Enabled {
		backupService = services.NewBackupService(cfg, ledgerService)
		backupService.Start()
		defer backupService.Stop()
	} else {
		log.Println("[Backup] R2 credentials not set, snapshot backups disabled")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(ledgerService, jwtManager)
	customerHandler := handlers.NewCustomerHandler(ledgerService)
	productHandler := handlers.NewProductHandler(ledgerService)
	entryHandler := handlers.NewEntryHandler(ledgerService)
	billHandler := handlers.NewBillHandler(ledgerService, pdfService, razorpayService, cfg)
	snapshotHandler := handlers.NewSnapshotHandler(ledgerService, backupService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		customerHandler,
		productHandler,
		entryHandler,
		billHandler,
		snapshotHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and CORS
	handler := middleware.PanicRecovery(corsMiddleware(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
