package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/SWEConnect/backend/internal/config"
	"github.com/SWEConnect/backend/internal/handler"
	"github.com/SWEConnect/backend/internal/logger"
	"github.com/SWEConnect/backend/internal/middleware"
	"github.com/SWEConnect/backend/internal/model"
	"github.com/SWEConnect/backend/internal/router"
	"github.com/SWEConnect/backend/internal/scheduler"
	"github.com/SWEConnect/backend/internal/service"
	"github.com/SWEConnect/backend/pkg/idp"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Logger
	level := logger.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		l, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	}
	defer logger.Sync()

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Member{},
		&model.Application{},
		&model.ApplicationQuestion{},
		&model.ApplicationSubmission{},
		&model.ApplicationSubmissionAnswer{},
		&model.ApplicationSubmissionEvaluation{},
		&model.ClubApplication{},
		&model.ClubApplicationQuestion{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := middleware.NewRedisLimiter(rdb)

	// Identity provider client
	oauth := idp.NewOAuthClient(cfg.IdP.BaseURL, cfg.IdP.AppID, cfg.IdP.AppSecret, cfg.IdP.RedirectURI)

	// Services
	authService := service.NewAuthService(db, oauth, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	projectService := service.NewProjectService(db)
	appService := service.NewApplicationService(db)
	questionService := service.NewApplicationQuestionService(db)
	submissionService := service.NewApplicationSubmissionService(db, appService)
	clubService := service.NewClubApplicationService(db)

	// Deadline sweep
	sched, err := scheduler.NewManager(appService, cfg)
	if err != nil {
		log.Fatalf("create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	appHandler := handler.NewApplicationHandler(appService)
	questionHandler := handler.NewApplicationQuestionHandler(questionService)
	submissionHandler := handler.NewApplicationSubmissionHandler(submissionService)
	clubHandler := handler.NewClubApplicationHandler(clubService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	rateWindow := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	router.Setup(r, router.Deps{
		DB:                 db,
		JWTSecret:          cfg.JWT.Secret,
		Limiter:            limiter,
		RateLimitRequests:  cfg.RateLimit.Requests,
		RateLimitWindow:    rateWindow,
		AuthHandler:        authHandler,
		ProjectHandler:     projectHandler,
		ApplicationHandler: appHandler,
		QuestionHandler:    questionHandler,
		SubmissionHandler:  submissionHandler,
		ClubHandler:        clubHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
