package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	"homework_backend/internals/features/users/session/controller"
	"homework_backend/internals/features/users/session/service"
	studentService "homework_backend/internals/features/users/students/service"
	"homework_backend/internals/middlewares"
)

func newSessionService(db *gorm.DB) *service.Service {
	return service.NewService(
		classroomService.NewService(classroomService.NewGormRepository(db)),
		studentService.NewService(studentService.NewGormRepository(db), nil),
	)
}

// StudentSessionAuthRoutes: name + classroom code login (/api/auth/student/session).
func StudentSessionAuthRoutes(auth fiber.Router, db *gorm.DB) {
	ctl := controller.NewSessionController(newSessionService(db))

	auth.Post("/student/session", middlewares.StudentSessionRateLimiter(), ctl.StudentLogin)
}

// SessionRoutes: GET /api/session for either role. authJWT must run first.
func SessionRoutes(api fiber.Router, db *gorm.DB, authJWT fiber.Handler) {
	ctl := controller.NewSessionController(newSessionService(db))

	api.Get("/session", authJWT, ctl.Resolve)
}
