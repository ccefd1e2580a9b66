package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dailyRankingRoute "homework_backend/internals/features/progress/daily_rankings/route"
	pointsRoute "homework_backend/internals/features/progress/points/route"
)

func ProgressStudentRoutes(student fiber.Router, db *gorm.DB) {
	pointsRoute.PointsStudentRoutes(student, db)
}

func ProgressTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	pointsRoute.PointsTeacherRoutes(teacher, db)
	dailyRankingRoute.DailyRankingTeacherRoutes(teacher, db)
}
