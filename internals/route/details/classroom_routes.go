package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomRoute "homework_backend/internals/features/classrooms/classrooms/route"
	noticeRoute "homework_backend/internals/features/classrooms/notices/route"
	studentRoute "homework_backend/internals/features/users/students/route"
	ossHelper "homework_backend/internals/helpers/oss"
)

func ClassroomPublicRoutes(public fiber.Router, db *gorm.DB) {
	classroomRoute.ClassroomPublicRoutes(public, db)
}

func ClassroomTeacherRoutes(teacher fiber.Router, db *gorm.DB, photos ossHelper.PhotoStore) {
	classroomRoute.ClassroomTeacherRoutes(teacher, db)
	studentRoute.StudentTeacherRoutes(teacher, db, photos)
	noticeRoute.NoticeTeacherRoutes(teacher, db)
}

func ClassroomStudentRoutes(student fiber.Router, db *gorm.DB) {
	noticeRoute.NoticeStudentRoutes(student, db)
}
