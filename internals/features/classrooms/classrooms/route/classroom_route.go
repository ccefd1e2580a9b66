package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"homework_backend/internals/features/classrooms/classrooms/controller"
	"homework_backend/internals/features/classrooms/classrooms/service"
)

// ClassroomTeacherRoutes mounts under the teacher group (/api/t), after the classroom scope middleware.
func ClassroomTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(service.NewService(service.NewGormRepository(db)))

	g := teacher.Group("/classroom")
	g.Get("/", ctl.GetMine)
	g.Patch("/", ctl.Rename)
	g.Get("/stats", ctl.Stats)
	g.Put("/code", ctl.UpdateCode)
	g.Post("/code/regenerate", ctl.RegenerateCode)
}

// ClassroomPublicRoutes: lookup by code before a student joins (/api/public).
func ClassroomPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(service.NewService(service.NewGormRepository(db)))

	public.Get("/classrooms/:code", ctl.FindByCode)
}
