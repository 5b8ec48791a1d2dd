package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medilinkx/benefits-backend/internal/adapters/cache"
	"github.com/medilinkx/benefits-backend/internal/adapters/database"
	"github.com/medilinkx/benefits-backend/internal/adapters/events"
	"github.com/medilinkx/benefits-backend/internal/adapters/providers/geolocation"
	"github.com/medilinkx/benefits-backend/internal/adapters/search"
	"github.com/medilinkx/benefits-backend/internal/api/handlers"
	"github.com/medilinkx/benefits-backend/internal/api/middleware"
	"github.com/medilinkx/benefits-backend/internal/api/routes"
	"github.com/medilinkx/benefits-backend/internal/application/services"
	"github.com/medilinkx/benefits-backend/internal/domain/providers"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/postgres"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/redis"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/clients/typesense"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/observability"
	"github.com/medilinkx/benefits-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
		typesenseClient = nil
	} else {
		log.Println("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient.Client())
	}

	// Initialize event bus for real-time voucher updates
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient.Client())
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Initialize adapters

	// Create base hospital adapter
	baseHospitalAdapter := database.NewHospitalAdapter(pgClient)

	// Wrap with caching if Redis is available (for read performance optimization)
	var hospitalAdapter repositories.HospitalRepository
	if cacheProvider != nil {
		hospitalAdapter = database.NewCachedHospitalAdapter(baseHospitalAdapter, cacheProvider)
		log.Println("Hospital adapter wrapped with caching layer")
	} else {
		hospitalAdapter = baseHospitalAdapter
		log.Println("Hospital adapter running without cache (Redis unavailable)")
	}

	schemeAdapter := database.NewSchemeAdapter(pgClient)
	healthIDAdapter := database.NewHealthIDAdapter(pgClient)
	voucherAdapter := database.NewVoucherAdapter(pgClient)
	transactionAdapter := database.NewTransactionAdapter(pgClient)
	walletAdapter := database.NewWalletAdapter(pgClient)
	recommendationAdapter := database.NewRecommendationAdapter(pgClient)
	locationAdapter := database.NewPreferredLocationAdapter(pgClient)

	var searchRepo repositories.HospitalSearchRepository
	if typesenseClient != nil {
		if err := typesenseClient.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		searchRepo = search.NewTypesenseAdapter(typesenseClient)
	}

	var geolocationProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "google":
		if cfg.Geolocation.APIKey == "" {
			log.Println("Warning: GEOLOCATION_API_KEY is not set; using mock geolocation provider")
			geolocationProvider = geolocation.NewMockGeolocationProvider()
		} else {
			geolocationProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, cacheProvider)
		}
	default:
		geolocationProvider = geolocation.NewMockGeolocationProvider()
	}

	// Initialize services
	georankService := services.NewGeoRankService(cfg.Scoring.NearbyRadiusKm)
	hospitalService := services.NewHospitalService(hospitalAdapter, searchRepo, georankService)

	eligibilityService := services.NewEligibilityService(services.StrategyByName(cfg.Scoring.Strategy))
	log.Printf("Scheme scoring strategy: %s", eligibilityService.Strategy().Name())

	recommendationService := services.NewRecommendationService(
		schemeAdapter,
		healthIDAdapter,
		recommendationAdapter,
		eligibilityService,
	)
	voucherService := services.NewVoucherService(voucherAdapter, healthIDAdapter, schemeAdapter, eventBus)
	transactionService := services.NewTransactionService(
		transactionAdapter,
		voucherAdapter,
		healthIDAdapter,
		schemeAdapter,
		walletAdapter,
		eventBus,
	)
	locationService := services.NewPreferredLocationService(locationAdapter)

	// Start cache warming service for improved read performance
	if cacheProvider != nil {
		warmingService := services.NewCacheWarmingService(
			baseHospitalAdapter, // warm from the database, not through the cache
			schemeAdapter,
			cacheProvider,
		)
		warmingService.StartPeriodicWarming(ctx, 5*time.Minute)
		log.Println("Cache warming service started (refreshes every 5 minutes)")
	}

	// Initialize handlers
	hospitalHandler := handlers.NewHospitalHandler(hospitalService)
	schemeHandler := handlers.NewSchemeHandler(schemeAdapter, eligibilityService, recommendationService)
	healthIDHandler := handlers.NewHealthIDHandler(healthIDAdapter)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	walletHandler := handlers.NewWalletHandler(walletAdapter)
	locationHandler := handlers.NewPreferredLocationHandler(locationService)
	geolocationHandler := handlers.NewGeolocationHandler(geolocationProvider)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		hospitalHandler,
		schemeHandler,
		healthIDHandler,
		voucherHandler,
		transactionHandler,
		walletHandler,
		locationHandler,
		geolocationHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}
