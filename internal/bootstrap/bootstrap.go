package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/bekzod/unilib/internal/app/controllers"
	appMigrations "github.com/bekzod/unilib/internal/app/migrations"
	appRepos "github.com/bekzod/unilib/internal/app/repositories"
	appRoutes "github.com/bekzod/unilib/internal/app/routes"
	appServices "github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/config"
	"github.com/bekzod/unilib/internal/db"
	appMiddleware "github.com/bekzod/unilib/internal/middleware"
	pkgAuth "github.com/bekzod/unilib/internal/pkg/auth"
	"github.com/bekzod/unilib/internal/pkg/filestorage"
	"github.com/bekzod/unilib/internal/pkg/helpers"
	"github.com/bekzod/unilib/internal/pkg/logger"
	"github.com/bekzod/unilib/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers

	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	FileStorage    *filestorage.LocalStorage
	Database       *db.PostgresDB
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations
// and seeds the owner account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, database.Pool, cfg, lgr); err != nil {
		// Startup proceeds; the owner can still be created manually.
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}
	dbPool := database.Pool

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = &appServices.Services{
		AuthService: appServices.NewAuthService(
			deps.Repos.AdminRepository,
			deps.Repos.UserRepository,
			deps.Repos.UniversityRepository,
			deps.JWTService,
		),
		UniversityService: appServices.NewUniversityService(deps.Repos.UniversityRepository),
		DirectionService:  appServices.NewDirectionService(deps.Repos.DirectionRepository, deps.Repos.UniversityRepository),
		KafedraService:    appServices.NewKafedraService(deps.Repos.KafedraRepository, deps.Repos.UniversityRepository),
		SubjectService: appServices.NewSubjectService(
			deps.Repos.SubjectRepository,
			deps.Repos.DirectionRepository,
			deps.Repos.KafedraRepository,
			deps.Repos.UniversityRepository,
			database,
		),
		LiteratureService: appServices.NewLiteratureService(
			deps.Repos.LiteratureRepository,
			deps.Repos.SubjectRepository,
			deps.FileStorage,
			cfg.Stats.CopyRatio,
		),
		NewsService:  appServices.NewNewsService(deps.Repos.NewsRepository, deps.Repos.UniversityRepository, deps.FileStorage),
		UserService:  appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.UniversityRepository),
		AdminService: appServices.NewAdminService(deps.Repos.AdminRepository, deps.Repos.UniversityRepository),
		StatsService: appServices.NewStatsService(deps.Repos.StatsRepository, cfg.Stats.CopyRatio),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.Services.AuthService, deps.JWTService.RefreshTokenTTL(), cfg.Server.SecureCookies),
		University: appControllers.NewUniversityController(deps.Services.UniversityService),
		Direction:  appControllers.NewDirectionController(deps.Services.DirectionService),
		Kafedra:    appControllers.NewKafedraController(deps.Services.KafedraService),
		Subject:    appControllers.NewSubjectController(deps.Services.SubjectService),
		Literature: appControllers.NewLiteratureController(deps.Services.LiteratureService),
		News:       appControllers.NewNewsController(deps.Services.NewsService),
		User:       appControllers.NewUserController(deps.Services.UserService),
		Admin:      appControllers.NewAdminController(deps.Services.AdminService),
		Stats:      appControllers.NewStatsController(deps.Services.StatsService),
		Health:     appControllers.NewHealthController(database),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
