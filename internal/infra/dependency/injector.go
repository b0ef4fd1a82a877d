// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/levy-tracker/backend/config"
	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/application/usecase/record"
	"github.com/levy-tracker/backend/internal/application/usecase/setting"
	"github.com/levy-tracker/backend/internal/domain/identity"
	"github.com/levy-tracker/backend/internal/domain/layout"
	"github.com/levy-tracker/backend/internal/domain/template"
	"github.com/levy-tracker/backend/internal/infra/server/router"
	"github.com/levy-tracker/backend/internal/integration/adapters"
	"github.com/levy-tracker/backend/internal/integration/cache"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/levy-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case settings are read from the database on every mutation.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, databaseHealth controller.HealthChecker) *Injector {
	// Create repositories
	recordRepo := persistence.NewRecordRepository(db)
	settingRepo := persistence.NewSettingRepository(db)

	var settingCache adapter.SettingCache
	var cacheHealth controller.HealthChecker
	if redisClient != nil {
		settingCache = cache.NewSettingCache(redisClient)
		cacheHealth = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	// Create domain services
	registry := template.Default()
	assignor := identity.NewAssignor(registry)
	reconciler := layout.NewReconciler(registry, assignor)

	// Create setting use cases
	bounds := cfg.Records.TimeoutBounds()
	getTimeoutUseCase := setting.NewGetMutationTimeoutUseCase(settingRepo, settingCache, bounds, cfg.Redis.CacheTTL)
	updateTimeoutUseCase := setting.NewUpdateMutationTimeoutUseCase(settingRepo, settingCache, bounds)

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	getRecordUseCase := record.NewGetRecordUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, getTimeoutUseCase, assignor, cfg.Records.DefaultCurrency)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo, getTimeoutUseCase)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, getTimeoutUseCase, assignor, deleteRecordUseCase)
	reconcileUseCase := record.NewReconcileLayoutUseCase(reconciler, registry)
	layoutUseCase := record.NewGetRecordLayoutUseCase(recordRepo, reconciler, registry)
	duplicateUseCase := record.NewDuplicateRecordUseCase(layoutUseCase, createRecordUseCase)
	templateUseCase := record.NewGetTemplateUseCase(registry)

	// Create controllers
	healthController := controller.NewHealthController(databaseHealth, cacheHealth, registry.Version())

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		getRecordUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
		reconcileUseCase,
		layoutUseCase,
		duplicateUseCase,
	)

	templateController := controller.NewTemplateController(templateUseCase)
	settingController := controller.NewSettingController(getTimeoutUseCase, updateTimeoutUseCase)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxMutations, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(adapters.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer))

	// Create router
	r := router.NewRouter(healthController, recordController, templateController, settingController, rateLimiter, authMiddleware)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		RateLimiter: rateLimiter,
	}
}
