package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"homework_backend/internals/features/homeworks/submissions/controller"
	"homework_backend/internals/features/homeworks/submissions/service"
	studentService "homework_backend/internals/features/users/students/service"
	ossHelper "homework_backend/internals/helpers/oss"
)

func newController(db *gorm.DB, photos ossHelper.PhotoStore) *controller.HomeworkSubmissionController {
	students := studentService.NewService(studentService.NewGormRepository(db), photos)
	return controller.NewHomeworkSubmissionController(
		service.NewService(service.NewGormRepository(db), students, photos),
	)
}

// HomeworkStudentRoutes mounts under the student group (/api/s).
func HomeworkStudentRoutes(student fiber.Router, db *gorm.DB, photos ossHelper.PhotoStore) {
	ctl := newController(db, photos)

	g := student.Group("/homeworks")
	g.Get("/", ctl.ListMine)
	g.Post("/", ctl.Submit)
	g.Get("/today", ctl.Today)
	g.Get("/stamps", ctl.Stamps)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

// HomeworkTeacherRoutes mounts under the teacher group (/api/t).
func HomeworkTeacherRoutes(teacher fiber.Router, db *gorm.DB, photos ossHelper.PhotoStore) {
	ctl := newController(db, photos)

	teacher.Get("/students/:id/homeworks", ctl.ReviewStudent)
	teacher.Delete("/homeworks/:id", ctl.TeacherDelete)
}
