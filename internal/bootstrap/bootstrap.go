// Package bootstrap wires configuration, storage, services and HTTP
// routing into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tanvi/examtrack/docs" // Import generated swagger docs
	appControllers "github.com/tanvi/examtrack/internal/app/controllers"
	"github.com/tanvi/examtrack/internal/app/jobs"
	appMigrations "github.com/tanvi/examtrack/internal/app/migrations"
	appRepos "github.com/tanvi/examtrack/internal/app/repositories"
	appRoutes "github.com/tanvi/examtrack/internal/app/routes"
	appServices "github.com/tanvi/examtrack/internal/app/services"
	"github.com/tanvi/examtrack/internal/config"
	"github.com/tanvi/examtrack/internal/db"
	appMiddleware "github.com/tanvi/examtrack/internal/middleware"
	pkgAuth "github.com/tanvi/examtrack/internal/pkg/auth"
	"github.com/tanvi/examtrack/internal/pkg/cache"
	"github.com/tanvi/examtrack/internal/pkg/helpers"
	"github.com/tanvi/examtrack/internal/pkg/logger"
	"github.com/tanvi/examtrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	ExamService            appServices.ExamService
	RegistrationService    appServices.RegistrationService
	PredictionService      appServices.PredictionService
	CutoffService          appServices.CutoffService
	ReminderService        appServices.ReminderService
	AuthController         *appControllers.AuthController
	ExamController         *appControllers.ExamController
	RegistrationController *appControllers.RegistrationController
	PredictionController   *appControllers.PredictionController
	CutoffController       *appControllers.CutoffController
	ReminderController     *appControllers.ReminderController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Cache                  *cache.Cache
	Dispatcher             *jobs.Dispatcher
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed the exam catalog and cutoff reference data after migrations
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Redis cache is optional; the cutoff service falls back to the
	// database when it is disabled or unreachable
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		ttl := helpers.ParseDuration(cfg.Redis.TTL, 10*time.Minute)
		redisCache, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
		if err != nil {
			lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, continuing without cache")
		} else {
			deps.Cache = redisCache
			lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
		}
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.RegistrationRepository, deps.Repos.ExamRepository)
	deps.PredictionService = appServices.NewPredictionService(deps.Repos.ExamRepository, deps.Repos.PredictionRepository)
	deps.CutoffService = appServices.NewCutoffService(deps.Repos.CutoffRepository, deps.Cache)
	deps.ReminderService = appServices.NewReminderService(deps.Repos.ReminderRepository, deps.Repos.ExamRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.ExamController = appControllers.NewExamController(deps.ExamService, deps.Logger)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, deps.Logger)
	deps.PredictionController = appControllers.NewPredictionController(deps.PredictionService, deps.Logger)
	deps.CutoffController = appControllers.NewCutoffController(deps.CutoffService, deps.Logger)
	deps.ReminderController = appControllers.NewReminderController(deps.ReminderService, deps.Logger)

	if cfg.Scheduler.Enabled {
		sweepInterval := helpers.ParseDuration(cfg.Scheduler.SweepInterval, time.Minute)
		deps.Dispatcher = jobs.NewDispatcher(deps.Repos.ReminderRepository, deps.Repos.TokenRepository, sweepInterval)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ExamController,
		deps.RegistrationController,
		deps.PredictionController,
		deps.CutoffController,
		deps.ReminderController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
