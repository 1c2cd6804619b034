package main

import (
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/trustrails/adviser-shield/internal/advisers"
	"github.com/trustrails/adviser-shield/internal/analysis"
	"github.com/trustrails/adviser-shield/internal/documents"
	"github.com/trustrails/adviser-shield/internal/enrichment"
	"github.com/trustrails/adviser-shield/internal/registry"
	"github.com/trustrails/adviser-shield/pkg/common"
	"github.com/trustrails/adviser-shield/pkg/config"
	"github.com/trustrails/adviser-shield/pkg/database"
	"github.com/trustrails/adviser-shield/pkg/health"
	"github.com/trustrails/adviser-shield/pkg/logger"
	"github.com/trustrails/adviser-shield/pkg/middleware"
	"github.com/trustrails/adviser-shield/pkg/ratelimit"
	"github.com/trustrails/adviser-shield/pkg/redis"
)

const serviceVersion = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load("adviser-shield")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Sentry error reporting
	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
			Release:     cfg.Server.ServiceName + "@" + serviceVersion,
		}); err != nil {
			log.Fatalf("Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	healthChecks := map[string]func() error{}

	// Registry directory: SQL-backed when a database is configured, the
	// built-in static directory otherwise
	var directory registry.Directory
	if cfg.Database.Enabled {
		sqlDir, err := registry.OpenSQLDirectory(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("Failed to open registry database: %v", err)
		}
		defer sqlDir.Close()
		directory = sqlDir
		healthChecks["registry_db"] = health.DatabaseChecker(sqlDir.DB())
		log.Println("Registry directory: PostgreSQL")
	} else {
		directory = registry.NewStaticDirectory()
		log.Println("Registry directory: static fixtures")
	}

	// Redis backs the verification cache and the rate limiter
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		healthChecks["redis"] = health.RedisChecker(redisClient.Client)
		log.Println("Connected to Redis")
	}

	registryService := registry.NewService(
		registry.NewVerifier(directory),
		directory,
		redisCache(redisClient),
	)
	registryHandler := registry.NewHandler(registryService)

	// Optional zero-shot classifier; results are advisory only
	var classifier enrichment.Classifier
	if cfg.HuggingFace.Token != "" {
		classifier = enrichment.NewHFClassifier(
			cfg.HuggingFace.Token,
			cfg.HuggingFace.Model,
			"",
			time.Duration(cfg.HuggingFace.TimeoutSeconds)*time.Second,
		)
		log.Println("Zero-shot classifier enabled")
	}

	scanner := analysis.NewScanner(analysis.DefaultCatalog())
	analysisService := analysis.NewService(scanner, registryService, classifier)
	analysisHandler := analysis.NewHandler(analysisService, documents.NewPlainTextExtractor(), cfg.Analysis)

	// Adviser intake storage
	var adviserRepo advisers.Repository
	if cfg.Database.Enabled {
		pool, err := database.NewPostgresPool(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(pool)
		adviserRepo = advisers.NewPostgresRepository(pool)
		log.Println("Adviser repository: PostgreSQL")
	} else {
		adviserRepo = advisers.NewMemoryRepository()
		log.Println("Adviser repository: in-memory")
	}
	adviserService := advisers.NewService(adviserRepo, analysisService, cfg.Analysis.BioMaxChars)
	adviserHandler := advisers.NewHandler(adviserService)

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	router.Use(middleware.SecurityHeaders())
	if cfg.Sentry.Enabled {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Correlation-ID"}
	router.Use(cors.New(corsConfig))

	// Health check and metrics (no limits applied)
	router.GET("/healthz", common.HealthCheckWithDeps(cfg.Server.ServiceName, serviceVersion, healthChecks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewLimiter(redisClient.Client, cfg.RateLimit)
		api.Use(ratelimit.Middleware(limiter))
		log.Println("Rate limiting enabled")
	}
	analysisHandler.RegisterRoutes(api)
	registryHandler.RegisterRoutes(api)
	adviserHandler.RegisterRoutes(api)

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Adviser screening service starting on port %s", cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func redisCache(client *redis.Client) *goredis.Client {
	if client == nil {
		return nil
	}
	return client.Client
}
