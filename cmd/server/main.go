package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campusai-api/internal/ai"
	"github.com/noah-isme/campusai-api/internal/handler"
	"github.com/noah-isme/campusai-api/internal/middleware"
	"github.com/noah-isme/campusai-api/internal/repository"
	"github.com/noah-isme/campusai-api/internal/service"
	"github.com/noah-isme/campusai-api/internal/session"
	"github.com/noah-isme/campusai-api/pkg/cache"
	"github.com/noah-isme/campusai-api/pkg/config"
	"github.com/noah-isme/campusai-api/pkg/database"
	"github.com/noah-isme/campusai-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campusai-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campusai-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database); err != nil {
			logr.Sugar().Fatalw("failed to apply migrations", "error", err)
		}
	}

	var sessionStore session.Store
	switch cfg.Session.Store {
	case "redis":
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient)
	default:
		memStore := session.NewMemoryStore(cfg.Session.SweepInterval)
		defer memStore.Close()
		sessionStore = memStore
	}
	sessions := session.NewManager(cfg.Session, sessionStore)

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	eventRepo := repository.NewEventRepository(db)
	counselingRepo := repository.NewCounselingRepository(db)
	chatRepo := repository.NewChatRepository(db)

	responder := ai.NewGeminiClient(cfg.AI)

	authSvc := service.NewAuthService(userRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, scheduleRepo, nil)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, validate, logr)
	resourceSvc := service.NewResourceService(resourceRepo)
	eventSvc := service.NewEventService(eventRepo, logr)
	counselingSvc := service.NewCounselingService(counselingRepo, validate)
	chatSvc := service.NewChatService(chatRepo, userRepo, responder, validate, logr, metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	handler.Routes{
		Auth:       handler.NewAuthHandler(authSvc, sessions),
		Classes:    handler.NewClassHandler(classSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc),
		Resources:  handler.NewResourceHandler(resourceSvc),
		Events:     handler.NewEventHandler(eventSvc),
		Counseling: handler.NewCounselingHandler(counselingSvc),
		Chat:       handler.NewChatHandler(chatSvc),
	}.Register(r, cfg.APIPrefix, middleware.RequireSession(sessions))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
