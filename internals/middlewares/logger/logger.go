package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"homework_backend/internals/configs"
)

// LoggerMiddleware logs every request
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.Location().String(),
		Format:     "[${time}] ${locals:requestid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
