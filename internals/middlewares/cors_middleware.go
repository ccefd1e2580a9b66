// middlewares/cors.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"homework_backend/internals/configs"
)

// CorsMiddleware reads the allowed origins from CORS_ORIGINS (comma separated).
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: origins != "*",
	})
}
