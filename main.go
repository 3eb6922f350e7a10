package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/shop/api/audit"
	"github.com/dev-mohitbeniwal/shop/api/config"
	"github.com/dev-mohitbeniwal/shop/api/controller"
	"github.com/dev-mohitbeniwal/shop/api/dao"
	"github.com/dev-mohitbeniwal/shop/api/db"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/middleware"
	pdp_dao "github.com/dev-mohitbeniwal/shop/api/pdp/dao"
	"github.com/dev-mohitbeniwal/shop/api/pdp/engine"
	"github.com/dev-mohitbeniwal/shop/api/router"
	"github.com/dev-mohitbeniwal/shop/api/service"
	"github.com/dev-mohitbeniwal/shop/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	usesNeo4j := cfg.Storage.Driver == "neo4j" || cfg.Policy.Source == "neo4j"
	if usesNeo4j {
		if err := db.InitNeo4j(); err != nil {
			logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
		}
		defer db.CloseNeo4j()
	}

	store, err := newClientStore(ctx, cfg.Storage.Driver)
	if err != nil {
		logger.Fatal("Failed to initialize client store", zap.Error(err))
	}

	rolePolicy, err := loadRolePolicy(ctx, cfg.Policy)
	if err != nil {
		logger.Fatal("Failed to load employee role table", zap.Error(err))
	}

	var cacheService util.ClientCache = util.NoopCache{}
	if cfg.Redis.Enabled {
		if err := db.InitRedis(); err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis()
		cacheService = util.NewCacheService()
	}

	var auditRepository audit.Repository = audit.NewLogRepository()
	if cfg.Elasticsearch.Enabled {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
		}
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	services, err := service.InitializeServices(
		store,
		rolePolicy,
		auditService,
		util.NewValidationUtil(),
		cacheService,
		util.NewNotificationService(),
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	handler := router.SetupRouter(
		controller.InitializeControllers(services),
		middleware.NewTokenResolver(cfg.Auth.ClientSecret, cfg.Auth.EmployeeSecret),
		router.Options{
			RateLimitEnabled:  cfg.RateLimit.Enabled && cfg.Redis.Enabled,
			RateLimitRequests: cfg.RateLimit.Requests,
			RateLimitDuration: cfg.RateLimit.Window,
		},
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		eventBus.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server exiting")
}

func newClientStore(ctx context.Context, driver string) (dao.ClientStore, error) {
	switch driver {
	case "memory":
		logger.Warn("Using in-memory client store; records are lost on restart")
		return dao.NewMemoryClientStore(), nil
	case "neo4j":
		return dao.NewClientDAO(ctx, db.Neo4jDriver)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// loadRolePolicy reads the role table from config, or from Neo4j seeded with
// the configured roles when the graph holds none yet.
func loadRolePolicy(ctx context.Context, policy config.PolicyConfiguration) (engine.RoleTable, error) {
	configured, err := engine.RoleTableFromConfig(policy.Roles)
	if err != nil {
		return engine.RoleTable{}, err
	}

	switch policy.Source {
	case "config":
		logger.Info("Loaded employee role table from config", zap.Strings("roles", configured.Roles()))
		return configured, nil
	case "neo4j":
		roleDAO := pdp_dao.NewRolePolicyDAO(db.Neo4jDriver)
		if err := roleDAO.EnsureUniqueConstraint(ctx); err != nil {
			return engine.RoleTable{}, err
		}
		stored, err := roleDAO.LoadRoleTable(ctx)
		if err != nil {
			return engine.RoleTable{}, err
		}
		if len(stored.Roles()) > 0 {
			return stored, nil
		}
		for _, role := range configured.Roles() {
			if err := roleDAO.UpsertRole(ctx, role, configured.Permissions(role)); err != nil {
				return engine.RoleTable{}, err
			}
		}
		logger.Info("Seeded employee role table in Neo4j", zap.Strings("roles", configured.Roles()))
		return configured, nil
	default:
		return engine.RoleTable{}, fmt.Errorf("unknown policy source %q", policy.Source)
	}
}
