package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/registrar/internal/app/controllers"
	"github.com/yigit/registrar/internal/app/persistence"
	appRoutes "github.com/yigit/registrar/internal/app/routes"
	appServices "github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/db"
	appMiddleware "github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/filestorage"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/slots"
	"github.com/yigit/registrar/internal/seed"
)

// DefaultConfigPath is where the configuration file is looked up
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                  *store.Store
	Services               *appServices.Services
	CourseTypeController   *appControllers.CourseTypeController
	CourseController       *appControllers.CourseController
	OfferingController     *appControllers.CourseOfferingController
	RegistrationController *appControllers.RegistrationController
	Logger                 zerolog.Logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LoadConfigAndSetupLogger loads .env files and configuration and
// initializes the logger writing to out (os.Stdout when nil).
func LoadConfigAndSetupLogger(configPath string, out io.Writer) (*config.Config, zerolog.Logger, error) {
	if out == nil {
		out = os.Stdout
	}
	// Startup failures go to out as well
	logger.Configure(logger.Config{Level: "info", Pretty: true, Output: out})

	if err := config.LoadDotEnv(); err != nil {
		logger.Error().Err(err).Msg("Failed to load .env file")
		return nil, zerolog.Logger{}, err
	}

	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	settings := logger.ConfigFromSettings(cfg.Logging.Level, cfg.Logging.Format)
	settings.Output = out
	lgr := logger.Configure(settings)
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the slot store selected by storage.driver. The returned
// closer releases its resources.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (slots.Store, io.Closer, error) {
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("Setting up storage...")

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return slots.NewMemory(), nopCloser{}, nil
	case config.StorageFile:
		dir, err := filestorage.NewSlotDir(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return dir, nopCloser{}, nil
	case config.StorageSQLite:
		sqlite, err := db.NewSQLiteSlots(cfg.Storage.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Storage.SQLitePath).Msg("Failed to open sqlite storage")
			return nil, nil, err
		}
		return sqlite, sqlite, nil
	case config.StoragePostgres:
		database, err := db.NewPostgresDB(ctx, cfg, lgr)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")
		return database.Slots(), database, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// LoadStore seeds a store from the slot store and mirrors every commit back
// into it.
func LoadStore(ctx context.Context, s slots.Store, lgr zerolog.Logger) *store.Store {
	mirror := persistence.NewMirror(s, lgr)
	st := store.New(store.WithSnapshot(mirror.Load(ctx)))
	st.Subscribe(mirror)
	return st
}

// BuildDependencies initializes services and controllers over st.
func BuildDependencies(ctx context.Context, cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.Services = appServices.NewServices(st, lgr)

	if cfg.Storage.SeedDefaults {
		if _, err := seed.CreateDefaultData(ctx, deps.Services.CourseTypes, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.CourseTypeController = appControllers.NewCourseTypeController(deps.Services.CourseTypes)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Courses)
	deps.OfferingController = appControllers.NewCourseOfferingController(deps.Services.CourseOfferings, deps.Services.Registrations)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.Services.Registrations)

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
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.CourseTypeController,
		deps.CourseController,
		deps.OfferingController,
		deps.RegistrationController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
