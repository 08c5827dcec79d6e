package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/cover-letter-assistant/internal/bootstrap"
	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/fadilmartias/cover-letter-assistant/internal/domain/fiber/handler"
	"github.com/fadilmartias/cover-letter-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	appLogger := util.NewLogger(appConfig.Env, appConfig.LogLevel)

	ctx := context.Background()
	deps, err := bootstrap.New(ctx, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("startup failed")
	}

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: util.ErrorHandler,
		// two uploads plus form fields
		BodyLimit: int(2*appConfig.MaxUploadBytes()) + 1<<20,
	})
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  appConfig.CORSOrigins,
		ExposeHeaders: "Content-Disposition, X-Export-Key",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	h := handler.NewCoverLetterHandler(deps.Usecase, appConfig.MaxUploadBytes(), appLogger)
	h.RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			appLogger.WithField("goroutines", runtime.NumGoroutine()).Debug("runtime stats")
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		appLogger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.WithError(err).Error("shutdown failed")
		}
	}()

	appLogger.WithField("port", appConfig.Port).Info("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		appLogger.WithError(err).Fatal("server stopped")
	}
}
