package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sepehrda/message-wall/internal/config"
	"github.com/sepehrda/message-wall/internal/database"
	"github.com/sepehrda/message-wall/internal/handler"
	"github.com/sepehrda/message-wall/internal/middleware"
	"github.com/sepehrda/message-wall/internal/queue"
	"github.com/sepehrda/message-wall/internal/repository"
	"github.com/sepehrda/message-wall/internal/router"
	queue_publisher "github.com/sepehrda/message-wall/internal/service"
)

func main() {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	messages := repository.NewMessageRepo(db)
	replies := repository.NewReplyRepo(db)
	appeals := repository.NewAppealRepo(db)
	stats := repository.NewStatsRepo(db)

	// Redis is optional; without it rate limiting and caching pass through.
	rdb := config.NewRedisClient()
	if rdb != nil {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	authH := handler.NewAuthHandler(cfg, users)
	messageH := handler.NewMessageHandler(messages)
	replyH := handler.NewReplyHandler(replies)
	appealH := handler.NewAppealHandler(appeals, queue_publisher.PublishAppealCreated)
	uploadH := handler.NewUploadHandler(cfg)
	adminH := handler.NewAdminHandler(stats)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBoard(e, messageH, replyH, uploadH, cfg.JWTSecret, cfg.UploadDir, cache)
	router.RegisterAppeals(e, appealH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	go queue.StartAppealConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
