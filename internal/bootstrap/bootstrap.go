package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/admissions-crm/internal/app/controllers"
	appRepos "github.com/yigit/admissions-crm/internal/app/repositories"
	appRoutes "github.com/yigit/admissions-crm/internal/app/routes"
	appServices "github.com/yigit/admissions-crm/internal/app/services"
	"github.com/yigit/admissions-crm/internal/config"
	appMiddleware "github.com/yigit/admissions-crm/internal/middleware"
	pkgAuth "github.com/yigit/admissions-crm/internal/pkg/auth"
	"github.com/yigit/admissions-crm/internal/pkg/latency"
	"github.com/yigit/admissions-crm/internal/pkg/logger"
	"github.com/yigit/admissions-crm/internal/pkg/metrics"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
	"github.com/yigit/admissions-crm/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	CommunicationService appServices.CommunicationService
	NoteService          appServices.NoteService
	ActivityService      appServices.ActivityService
	AuthService          appServices.AuthService
	Controllers          appRoutes.Controllers
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Hub                  *websocket.Hub
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupSessionStore opens the key/value store that persists the signed-in session.
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.KeyValueStore, error) {
	if cfg.Session.Store == config.SessionStoreMemory {
		lgr.Warn().Msg("Using in-memory session store, sessions will not survive a restart")
		return appRepos.NewMemoryKVStore(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := appRepos.OpenSQLiteKVStore(ctx, cfg.Session.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Session.Path).Msg("Failed to open session store")
		return nil, err
	}
	return store, nil
}

// BuildDependencies loads the mock dataset and wires repositories, services and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, session appRepos.KeyValueStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	store := appRepos.NewMemoryStore()
	seed.LoadMockData(store, seed.Options{
		Seed:         cfg.Mock.Seed,
		StudentCount: cfg.Mock.StudentCount,
	}, lgr)

	deps.Repos = appRepos.NewRepositories(store, session)
	if err := seed.CreateDefaultData(ctx, deps.Repos, seed.AdminAccount{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, lgr); err != nil {
		return nil, fmt.Errorf("failed to create default data: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenTTL(),
		RefreshTokenExp: cfg.RefreshTokenTTL(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	mutations := latency.NewSimulator(cfg.MutationLatency())
	logins := latency.NewSimulator(cfg.LoginLatency())
	deps.Hub = websocket.NewHub(logger.Component("feed"))

	deps.StudentService = appServices.NewStudentService(deps.Repos, mutations, deps.Hub, time.Now, logger.Component("students"))
	deps.CommunicationService = appServices.NewCommunicationService(deps.Repos, mutations, deps.Hub, time.Now, logger.Component("communications"))
	deps.NoteService = appServices.NewNoteService(deps.Repos, mutations, deps.Hub, time.Now, logger.Component("notes"))
	deps.ActivityService = appServices.NewActivityService(deps.Repos, mutations, deps.Hub, time.Now, logger.Component("activities"))
	deps.AuthService = appServices.NewAuthService(deps.Repos, deps.JWTService, logins, time.Now, logger.Component("auth"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.AuthService, lgr),
		Student:       appControllers.NewStudentController(deps.StudentService, time.Now, lgr),
		Communication: appControllers.NewCommunicationController(deps.CommunicationService, time.Now, lgr),
		Note:          appControllers.NewNoteController(deps.NoteService, time.Now, lgr),
		Activity:      appControllers.NewActivityController(deps.ActivityService, time.Now, lgr),
		Feed:          websocket.NewHandler(deps.Hub, logger.Component("feed")),
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

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
		appMiddleware.CORSMiddleware(cfg.Server.AllowedOrigin),
	)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appRoutes.LoginLimit{
		PerMinute: cfg.RateLimit.LoginPerMinute,
		Burst:     cfg.RateLimit.Burst,
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
