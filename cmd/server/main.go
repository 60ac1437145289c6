package main

import (
	"log"

	"carlookup/internal/config"
	"carlookup/internal/database"
	"carlookup/internal/handler"
	"carlookup/internal/middleware"
	"carlookup/internal/repository"
	"carlookup/internal/service"
	"carlookup/internal/utils"
	"carlookup/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(!cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zlog)

	zlog.Info("Config loaded successfully")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpirationMinutes)
	pagination := service.NewPaginationService(cfg.DefaultPageSize, cfg.MaxPageSize)

	retry := repository.DefaultRetryPolicy()
	newUOW := func() *repository.UnitOfWork {
		return repository.NewUnitOfWork(db, zlog, retry)
	}

	authService := service.NewAuthService(newUOW, tokens, zlog)
	makeService := service.NewCarMakeService(newUOW, pagination, zlog)
	modelService := service.NewCarModelService(newUOW, zlog)

	authHandler := handler.NewAuthHandler(authService, zlog)
	makeHandler := handler.NewCarMakeHandler(makeService, zlog)
	modelHandler := handler.NewCarModelHandler(modelService, zlog)

	extra := []gin.HandlerFunc{cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id", "Location"},
		AllowCredentials: true,
	})}

	// Rate limiting is only active when Redis is configured.
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zlog.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		limiter := middleware.NewRateLimiter(redis.NewClient(opts), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
		})
		extra = append(extra, limiter.Middleware())
		zlog.Info("Rate limiter enabled", zap.String("window", cfg.RateLimitWindow.String()))
	}

	router := handler.NewRouter(handler.RouterDeps{
		Auth:   authHandler,
		Makes:  makeHandler,
		Models: modelHandler,
		Tokens: tokens,
		Log:    zlog,
		IsProd: cfg.IsProduction(),
		Extra:  extra,
	})

	zlog.Info("Server starting", zap.String("addr", cfg.ServerPort))
	if err := router.Run(cfg.ServerPort); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
