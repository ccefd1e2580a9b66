package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionRoute "homework_backend/internals/features/users/session/route"
	profileRoute "homework_backend/internals/features/users/student_profiles/route"
	teacherRoute "homework_backend/internals/features/users/teachers/route"
)

// AuthRoutes mounts the token-issuing endpoints under /api/auth.
func AuthRoutes(auth fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherAuthRoutes(auth, db)
	sessionRoute.StudentSessionAuthRoutes(auth, db)
	profileRoute.StudentProfileAuthRoutes(auth, db)
}

// SessionRoutes: GET /api/session resolves whichever token the caller holds.
func SessionRoutes(api fiber.Router, db *gorm.DB, authJWT fiber.Handler) {
	sessionRoute.SessionRoutes(api, db, authJWT)
}
