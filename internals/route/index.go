package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"homework_backend/internals/configs"
	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	ossHelper "homework_backend/internals/helpers/oss"
	"homework_backend/internals/middlewares"
	authMiddleware "homework_backend/internals/middlewares/auth"
	routeDetails "homework_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every group:
//
//	/api/auth/*   public, issues tokens
//	/api/public/* public
//	/api/session  either token
//	/api/s/*      student token
//	/api/t/*      teacher token, scoped to the teacher's classroom
func SetupRoutes(app *fiber.App, db *gorm.DB, photos ossHelper.PhotoStore) {
	startTime = time.Now()
	if photos == nil {
		photos = ossHelper.InlineStore{}
	}

	BaseRoutes(app, db)

	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: configs.JWTSecret})

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	log.Println("[INFO] Setting up AUTH group...")
	routeDetails.AuthRoutes(api.Group("/auth"), db)
	routeDetails.SessionRoutes(api, db, authJWT)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	routeDetails.ClassroomPublicRoutes(public, db)

	log.Println("[INFO] Setting up STUDENT group (Auth + RoleCheck)...")
	student := api.Group("/s",
		authJWT,
		authMiddleware.OnlyStudent("student pages"),
	)
	routeDetails.HomeworkStudentRoutes(student, db, photos)
	routeDetails.ProgressStudentRoutes(student, db)
	routeDetails.ClassroomStudentRoutes(student, db)

	log.Println("[INFO] Setting up TEACHER group (Auth + RoleCheck + Classroom scope)...")
	teacher := api.Group("/t",
		authJWT,
		authMiddleware.OnlyTeacher("teacher pages"),
		authMiddleware.TeacherClassroomScope(classroomService.NewService(classroomService.NewGormRepository(db))),
	)
	routeDetails.ClassroomTeacherRoutes(teacher, db, photos)
	routeDetails.HomeworkTeacherRoutes(teacher, db, photos)
	routeDetails.ProgressTeacherRoutes(teacher, db)
}
