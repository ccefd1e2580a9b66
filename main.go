package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/configs"
	database "homework_backend/internals/databases"
	dailyRankingRoute "homework_backend/internals/features/progress/daily_rankings/route"
	"homework_backend/internals/features/progress/daily_rankings/scheduler"
	helper "homework_backend/internals/helpers"
	ossHelper "homework_backend/internals/helpers/oss"
	middlewares "homework_backend/internals/middlewares"
	routes "homework_backend/internals/route"
	"homework_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	if configs.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET must be set")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               8 * 1024 * 1024, // photo data URLs are base64 of up to 5 MB
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnvBool("AUTO_MIGRATE", true) {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("[FATAL] migrate: %v", err)
		}
	}
	if configs.GetEnvBool("RUN_SEED", false) {
		seeds.RunAllSeeds(database.DB, configs.GetEnv("SEED_FILE"))
	}

	photos := ossHelper.NewPhotoStoreFromEnv()

	// scheduler after the DB is ready
	rankingCron, err := scheduler.New(configs.RankingCron, configs.Location(), dailyRankingRoute.NewService(database.DB))
	if err != nil {
		log.Fatalf("[FATAL] ranking cron %q: %v", configs.RankingCron, err)
	}
	rankingCron.Start()

	routes.SetupRoutes(app, database.DB, photos)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("[INFO] listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("[FATAL] server error: %v", err)
		}
	}()

	// graceful shutdown: cron, HTTP server, then the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	rankingCron.Stop(ctx)
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	database.Close()
}
