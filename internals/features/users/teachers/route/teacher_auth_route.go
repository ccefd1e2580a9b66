package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	"homework_backend/internals/features/users/teachers/controller"
	"homework_backend/internals/features/users/teachers/service"
	"homework_backend/internals/middlewares"
)

// TeacherAuthRoutes mounts under /api/auth.
func TeacherAuthRoutes(auth fiber.Router, db *gorm.DB) {
	classrooms := classroomService.NewService(classroomService.NewGormRepository(db))
	ctl := controller.NewTeacherAuthController(service.NewService(service.NewGormRepository(db), classrooms))

	g := auth.Group("/teacher")
	g.Post("/signup", middlewares.RegisterRateLimiter(), ctl.SignUp)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
