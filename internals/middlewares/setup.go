package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"homework_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain. Order matters: recovery first so a
// panic anywhere below still reaches the ErrorHandler.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(10 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
