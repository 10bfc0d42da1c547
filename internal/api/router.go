package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aretelab/arete-api/internal/api/handler"
	"github.com/aretelab/arete-api/internal/api/middleware"
	"github.com/aretelab/arete-api/internal/core/service"
	"github.com/aretelab/arete-api/internal/infrastructure/config"
	mongostore "github.com/aretelab/arete-api/internal/infrastructure/db/mongo"
	redisstore "github.com/aretelab/arete-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("arete"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := mongostore.NewUserRepository(db)
	challengeRepo := mongostore.NewChallengeRepository(db)
	assessmentRepo := mongostore.NewAssessmentRepository(db)
	goalRepo := mongostore.NewGoalRepository(db)
	momentRepo := mongostore.NewMomentRepository(db)

	// --- Services ---
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, nil)
	authService := service.NewAuthService(userRepo, tokens, nil, log)
	challengeService := service.NewChallengeService(challengeRepo, goalRepo, redisstore.NewWeekLock(rdb), nil, log)
	onboardingService := service.NewOnboardingService(assessmentRepo, goalRepo, nil, log)
	momentService := service.NewMomentService(momentRepo, nil, log)
	insightsService := service.NewInsightsService(assessmentRepo, goalRepo, momentRepo, nil, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	challengeHandler := handler.NewChallengeHandler(challengeService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)
	momentHandler := handler.NewMomentHandler(momentService)
	insightsHandler := handler.NewInsightsHandler(insightsService)
	newsHandler := handler.NewNewsHandler()

	// --- Auth routes (public) ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := v1.Group("", middleware.Auth(authService))
	authed.POST("/assessment", onboardingHandler.SubmitAssessment)
	authed.GET("/assessment", onboardingHandler.GetAssessment)
	authed.POST("/goals", onboardingHandler.SubmitGoal)
	authed.GET("/goals", onboardingHandler.GetGoal)
	authed.POST("/moments", momentHandler.Create)
	authed.GET("/moments", momentHandler.List)
	authed.GET("/challenges", challengeHandler.List)
	authed.PATCH("/challenges/:id", challengeHandler.UpdateStatus)
	authed.GET("/dashboard/stats", insightsHandler.DashboardStats)
	authed.GET("/reflection/weekly", insightsHandler.WeeklyReflection)
	authed.GET("/news", newsHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
