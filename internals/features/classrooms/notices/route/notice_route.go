package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"homework_backend/internals/features/classrooms/notices/controller"
	"homework_backend/internals/features/classrooms/notices/service"
)

// NoticeTeacherRoutes mounts under /api/t.
func NoticeTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewNoticeController(service.NewService(service.NewGormRepository(db)))

	g := teacher.Group("/notices")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id/toggle", ctl.Toggle)
	g.Delete("/:id", ctl.Delete)
}

// NoticeStudentRoutes mounts under /api/s.
func NoticeStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctl := controller.NewNoticeController(service.NewService(service.NewGormRepository(db)))

	student.Get("/notices", ctl.ListActive)
}
