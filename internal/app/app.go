package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/controller"
	"github.com/infektyd/FoundationWriting/internal/repository"
	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/pkg/database"
	"github.com/infektyd/FoundationWriting/pkg/logger"
	"github.com/infektyd/FoundationWriting/pkg/monitoring"
	"github.com/infektyd/FoundationWriting/pkg/security"
	"github.com/infektyd/FoundationWriting/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	profile *repository.ProfileRepository
}

type services struct {
	auth        *service.AuthService
	analyzer    service.AnalysisProvider
	gaps        *service.GapAnalyzer
	roadmaps    *service.RoadmapService
	evaluator   *service.EvaluationService
	achievement *service.AchievementService
	challenge   *service.ChallengeService
	progression *service.ProgressionEngine
	exercise    *service.ExerciseService
}

type controllers struct {
	auth        *controller.AuthController
	exercise    *controller.ExerciseController
	roadmap     *controller.RoadmapController
	progression *controller.ProgressionController
	challenge   *controller.ChallengeController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		profile: repository.NewProfileRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	store, err := service.NewProfileStore(cfg, repos.profile)
	if err != nil {
		return nil, err
	}

	s.auth = service.NewAuthService(repos.user, cfg)

	s.analyzer = service.NewCachedAnalysisProvider(
		service.NewHTTPAnalysisProvider(cfg.Analysis),
		rdb,
		time.Duration(cfg.Analysis.CacheTTLMinutes)*time.Minute,
	)

	notifier := service.NewRedisNotificationSink(rdb)
	s.gaps = service.NewGapAnalyzer()
	s.roadmaps = service.NewRoadmapService()
	s.evaluator = service.NewEvaluationService()
	s.achievement = service.NewAchievementService(notifier)
	s.challenge = service.NewChallengeService(s.achievement)
	s.progression = service.NewProgressionEngine(store, s.achievement, s.challenge)
	s.exercise = service.NewExerciseService(s.analyzer, s.evaluator, s.progression, &cfg.Analysis)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		exercise:    controller.NewExerciseController(s.exercise),
		roadmap:     controller.NewRoadmapController(s.analyzer, s.gaps, s.roadmaps, s.progression),
		progression: controller.NewProgressionController(s.progression),
		challenge:   controller.NewChallengeController(s.progression),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("writing-coach", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
