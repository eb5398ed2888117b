package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "remodeling_proposals/docs" // This will be auto-generated
	"remodeling_proposals/internal/adapter/http/handlers"
	"remodeling_proposals/internal/adapter/persistence/repository"
	"remodeling_proposals/internal/config"
	"remodeling_proposals/internal/domain/pricing"
	"remodeling_proposals/internal/infrastructure/database"
	"remodeling_proposals/internal/infrastructure/logging"
	"remodeling_proposals/internal/infrastructure/metrics"
	"remodeling_proposals/internal/usecase"
	"remodeling_proposals/internal/usecase/generation"
	"remodeling_proposals/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg, logger); err != nil {
		logger.Fatal("Failed to wire the application", zap.Error(err))
	}

	logger.Info("Starting HTTP server", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	proposalRepo, err := newProposalRepository(ctx, cfg)
	if err != nil {
		return err
	}

	catalogDB, err := database.ConnectCatalogDB(cfg.CatalogDBDriver, cfg.CatalogDatabaseURL)
	if err != nil {
		return err
	}
	if cfg.SeedCatalog {
		if err := database.SeedCatalog(catalogDB); err != nil {
			return err
		}
	}

	var catalogRepo interfaces.ICatalogRepository = repository.NewCatalogGormRepository(catalogDB)
	pricingOpts := []usecase.PricingOption{usecase.WithPricingLogger(logger)}
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn("Catalog cache disabled", zap.Error(err))
		} else {
			cached := repository.NewCachedCatalogRepository(catalogRepo, rdb, cfg.CatalogTTL, logger)
			catalogRepo = cached
			pricingOpts = append(pricingOpts, usecase.WithCatalogCache(cached))
		}
	}

	pricingUseCase := usecase.NewPricingUseCase(repository.NewPricingGormRepository(catalogDB), pricingOpts...)
	tables, err := pricingUseCase.LoadTables(ctx)
	if err != nil {
		return err
	}
	engine := pricing.NewEngine(tables)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	generationMetrics := metrics.NewGenerationMetrics(registry, metrics.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Env,
	})

	selector := generation.NewSelector(
		cfg.DefaultLLMModel,
		generatorFactories(cfg, catalogRepo, engine, generationMetrics, logger),
		logger,
	)

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, selector, logger)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, engine)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler)
	addCatalogRoutes(v1, catalogHandler)
	addPricingRoutes(v1, pricingHandler)
	return nil
}

func newProposalRepository(ctx context.Context, cfg *config.Config) (interfaces.IProposalRepository, error) {
	switch cfg.StorageDriver {
	case "memory":
		return repository.NewProposalMemoryRepository(), nil
	case "", "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to dynamodb: %w", err)
		}
		if err := database.EnsureProposalsTable(ctx, ddb, cfg.ProposalsTable); err != nil {
			return nil, err
		}
		return repository.NewProposalDynamoRepository(ddb, cfg.ProposalsTable), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
