package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	sessionService "homework_backend/internals/features/users/session/service"
	"homework_backend/internals/features/users/student_profiles/controller"
	"homework_backend/internals/features/users/student_profiles/service"
	studentService "homework_backend/internals/features/users/students/service"
	"homework_backend/internals/middlewares"
)

// StudentProfileAuthRoutes mounts under /api/auth.
func StudentProfileAuthRoutes(auth fiber.Router, db *gorm.DB) {
	classrooms := classroomService.NewService(classroomService.NewGormRepository(db))
	students := studentService.NewService(studentService.NewGormRepository(db), nil)
	sessions := sessionService.NewService(classrooms, students)
	ctl := controller.NewStudentProfileController(
		service.NewService(service.NewGormRepository(db), classrooms, students, sessions),
	)

	g := auth.Group("/student")
	g.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
