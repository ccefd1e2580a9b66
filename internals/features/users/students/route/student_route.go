package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"homework_backend/internals/features/users/students/controller"
	"homework_backend/internals/features/users/students/service"
	ossHelper "homework_backend/internals/helpers/oss"
)

// StudentTeacherRoutes: student roster management (/api/t/students).
func StudentTeacherRoutes(teacher fiber.Router, db *gorm.DB, photos ossHelper.PhotoStore) {
	ctl := controller.NewStudentController(service.NewService(service.NewGormRepository(db), photos))

	g := teacher.Group("/students")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Rename)
	g.Delete("/:id", ctl.Delete)
}
