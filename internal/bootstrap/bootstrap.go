package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tolgahan/campusstock/internal/app/controllers"
	appMigrations "github.com/tolgahan/campusstock/internal/app/migrations"
	appRepos "github.com/tolgahan/campusstock/internal/app/repositories"
	appRoutes "github.com/tolgahan/campusstock/internal/app/routes"
	appServices "github.com/tolgahan/campusstock/internal/app/services"
	"github.com/tolgahan/campusstock/internal/config"
	"github.com/tolgahan/campusstock/internal/db"
	appMiddleware "github.com/tolgahan/campusstock/internal/middleware"
	pkgAuth "github.com/tolgahan/campusstock/internal/pkg/auth"
	"github.com/tolgahan/campusstock/internal/pkg/helpers"
	"github.com/tolgahan/campusstock/internal/pkg/logger"
	"github.com/tolgahan/campusstock/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService     *appServices.StudentService
	ProductService     *appServices.ProductService
	AcademicService    *appServices.AcademicService
	SubAdminService    *appServices.SubAdminService
	StudentController  *appControllers.StudentController
	ProductController  *appControllers.ProductController
	AcademicController *appControllers.AcademicController
	SubAdminController *appControllers.SubAdminController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
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

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.ProductRepository,
		deps.Repos.OrderRepository,
	)
	deps.ProductService = appServices.NewProductService(
		deps.Repos.ProductRepository,
		deps.Repos.StudentRepository,
	)
	deps.AcademicService = appServices.NewAcademicService(deps.Repos.CourseRepository)
	deps.SubAdminService = appServices.NewSubAdminService(deps.Repos.SubAdminRepository, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ProductController = appControllers.NewProductController(deps.ProductService)
	deps.AcademicController = appControllers.NewAcademicController(deps.AcademicService)
	deps.SubAdminController = appControllers.NewSubAdminController(deps.SubAdminService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ProductController,
		deps.AcademicController,
		deps.SubAdminController,
		deps.AuthMiddleware,
	)

	return router
}
