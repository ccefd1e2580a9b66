package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionRoute "homework_backend/internals/features/homeworks/submissions/route"
	ossHelper "homework_backend/internals/helpers/oss"
)

func HomeworkStudentRoutes(student fiber.Router, db *gorm.DB, photos ossHelper.PhotoStore) {
	submissionRoute.HomeworkStudentRoutes(student, db, photos)
}

func HomeworkTeacherRoutes(teacher fiber.Router, db *gorm.DB, photos ossHelper.PhotoStore) {
	submissionRoute.HomeworkTeacherRoutes(teacher, db, photos)
}
