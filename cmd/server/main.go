package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboardapp "github.com/dentalkiosk/backend/internal/application/dashboard"
	identityapp "github.com/dentalkiosk/backend/internal/application/identity"
	kioskapp "github.com/dentalkiosk/backend/internal/application/kiosk"
	practiceapp "github.com/dentalkiosk/backend/internal/application/practice"
	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/dentalkiosk/backend/internal/infrastructure/auth"
	"github.com/dentalkiosk/backend/internal/infrastructure/config"
	"github.com/dentalkiosk/backend/internal/infrastructure/logger"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence"
	"github.com/dentalkiosk/backend/internal/interfaces/http/handler"
	"github.com/dentalkiosk/backend/internal/interfaces/http/middleware"
	"github.com/dentalkiosk/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting survey kiosk backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with zap-backed gorm logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist: Redis when configured, otherwise in-process. A
	// single-kiosk practice typically runs without Redis.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Using in-memory token blacklist")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	surveyRepo := persistence.NewGormSurveyRepository(db.DB)
	responseRepo := persistence.NewGormResponseRepository(db.DB)
	npsRepo := persistence.NewGormNpsRollupRepository(db.DB)
	practiceRepo := persistence.NewGormPracticeRepository(db.DB)
	adminUserRepo := persistence.NewGormAdminUserRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Every request consults the practice row; fail early if the schema
	// was never migrated or seeded.
	if _, err := practiceRepo.Find(context.Background(), practice.DefaultID); err != nil {
		log.Fatal("Practice row not found, run migrations first", zap.Error(err))
	}

	// Application services
	kioskService := kioskapp.NewService(surveyRepo, responseRepo, npsRepo, practiceRepo, log)
	dashboardService := dashboardapp.NewService(dashboardRepo, responseRepo, surveyRepo, log)
	practiceService := practiceapp.NewService(practiceRepo, log)
	authService := identityapp.NewAuthService(adminUserRepo, jwtService, blacklist, log)

	// Handlers
	kioskHandler := handler.NewKioskHandler(kioskService, practiceService, cfg.Kiosk.DeviceType)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	practiceHandler := handler.NewPracticeHandler(practiceService)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler(db, version)

	// HTTP engine and global middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxy configuration", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	jwtMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	loginLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Patient-facing kiosk surface, no authentication
	kioskRoutes := router.NewDomainGroup("kiosk", "/kiosk")
	kioskRoutes.GET("/surveys", kioskHandler.ListSurveys)
	kioskRoutes.GET("/surveys/:id", kioskHandler.GetSurvey)
	kioskRoutes.GET("/practice", kioskHandler.GetPractice)
	kioskRoutes.POST("/responses", kioskHandler.StartResponse)
	kioskRoutes.PUT("/responses/:id/answers/:questionID", kioskHandler.SaveAnswer)
	kioskRoutes.GET("/responses/:id/position", kioskHandler.ResumePosition)
	kioskRoutes.POST("/responses/:id/complete", kioskHandler.CompleteResponse)

	// Admin authentication
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", middleware.RateLimit(loginLimiter), authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", jwtMW, authHandler.Logout)
	authRoutes.GET("/me", jwtMW, authHandler.Me)

	// Staff dashboard, JWT-protected
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(jwtMW)
	adminRoutes.GET("/dashboard/stats", dashboardHandler.Stats)
	adminRoutes.GET("/dashboard/chart", dashboardHandler.Chart)
	adminRoutes.GET("/dashboard/ratings", dashboardHandler.Ratings)
	adminRoutes.GET("/responses", dashboardHandler.ListResponses)
	adminRoutes.GET("/responses/:id", dashboardHandler.GetResponse)
	adminRoutes.GET("/surveys", dashboardHandler.ListSurveys)
	adminRoutes.GET("/practice", practiceHandler.Get)
	adminRoutes.PUT("/practice", practiceHandler.Update)

	// Health and liveness
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/health", systemHandler.Health)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(kioskRoutes).
		Register(authRoutes).
		Register(adminRoutes).
		Register(systemRoutes)
	r.Setup()

	// Root health endpoint outside API versioning for load balancers
	engine.GET("/health", systemHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
