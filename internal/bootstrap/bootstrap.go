// Package bootstrap wires configuration, logging, the record store and all
// HTTP dependencies together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tanmayaurl/Skillsculpt2/internal/app/controllers"
	appRoutes "github.com/tanmayaurl/Skillsculpt2/internal/app/routes"
	appServices "github.com/tanmayaurl/Skillsculpt2/internal/app/services"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/store"
	"github.com/tanmayaurl/Skillsculpt2/internal/config"
	"github.com/tanmayaurl/Skillsculpt2/internal/db"
	appMiddleware "github.com/tanmayaurl/Skillsculpt2/internal/middleware"
	pkgAuth "github.com/tanmayaurl/Skillsculpt2/internal/pkg/auth"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/logger"
	"github.com/tanmayaurl/Skillsculpt2/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Store                store.Store
	AuthService          appServices.AuthService
	MatchService         appServices.MatchService
	ResumeService        appServices.ResumeService
	InsightsService      appServices.InsightsService
	SearchService        appServices.SearchService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	JobController        *appControllers.JobController
	UniversityController *appControllers.UniversityController
	MatchController      *appControllers.MatchController
	ResumeController     *appControllers.ResumeController
	SearchController     *appControllers.SearchController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied first when present.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

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

// SetupStore selects and initializes a record store backend, then seeds the
// demo data on first boot. The returned closer releases backend resources.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (store.Store, func(), error) {
	var st store.Store
	closer := func() {}

	if cfg.UseRelationalStore() {
		lgr.Info().Msg("Establishing database connection...")
		pool, err := db.NewPostgresPool(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx, pool); err != nil {
			lgr.Error().Err(err).Msg("Failed to ensure database schema")
			pool.Close()
			return nil, nil, err
		}

		st = store.NewPostgresStore(pool, lgr)
		closer = pool.Close
		lgr.Info().Msg("Relational store ready")
	} else {
		st = store.NewFileStore(cfg.Store.SnapshotPath, lgr)
		lgr.Info().Str("path", cfg.Store.SnapshotPath).Msg("Embedded file store ready")
	}

	if err := seed.EnsureDemoData(context.Background(), st, lgr); err != nil {
		// Seeding failure is not fatal; the store still serves.
		lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
	}

	return st, closer, nil
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, st store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	var err error
	deps.AuthService, err = appServices.NewAuthService(deps.JWTService, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	deps.MatchService = appServices.NewMatchService(st)
	deps.ResumeService = appServices.NewResumeService(st)
	deps.InsightsService = appServices.NewInsightsService(st)
	deps.SearchService = appServices.NewSearchService(st)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(st, lgr)
	deps.JobController = appControllers.NewJobController(st, lgr)
	deps.UniversityController = appControllers.NewUniversityController(st, deps.InsightsService, lgr)
	deps.MatchController = appControllers.NewMatchController(deps.MatchService)
	deps.ResumeController = appControllers.NewResumeController(deps.ResumeService)
	deps.SearchController = appControllers.NewSearchController(deps.SearchService)

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
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.JobController,
		deps.UniversityController,
		deps.MatchController,
		deps.ResumeController,
		deps.SearchController,
		deps.AuthMiddleware,
	)

	return router
}
