package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointController "homework_backend/internals/features/progress/points/controller"
	"homework_backend/internals/features/progress/points/service"
)

// PointsStudentRoutes mounts under /api/s.
func PointsStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctl := pointController.NewPointsController(service.NewService(service.NewGormRepository(db)))

	student.Get("/points", ctl.MySummary)
	student.Get("/rankings", ctl.StudentBoard)
}

// PointsTeacherRoutes mounts under /api/t.
func PointsTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := pointController.NewPointsController(service.NewService(service.NewGormRepository(db)))

	g := teacher.Group("/rankings")
	g.Get("/", ctl.Management)
	g.Get("/board", ctl.TeacherBoard)
}
