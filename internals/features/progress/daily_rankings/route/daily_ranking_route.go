package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	"homework_backend/internals/features/progress/daily_rankings/controller"
	"homework_backend/internals/features/progress/daily_rankings/service"
	pointsService "homework_backend/internals/features/progress/points/service"
)

// NewService wires the snapshot service; main uses it for the cron job as well.
func NewService(db *gorm.DB) *service.Service {
	return service.NewService(
		service.NewGormRepository(db),
		classroomService.NewService(classroomService.NewGormRepository(db)),
		pointsService.NewService(pointsService.NewGormRepository(db)),
	)
}

// DailyRankingTeacherRoutes mounts under /api/t.
func DailyRankingTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := controller.NewDailyRankingController(NewService(db))

	g := teacher.Group("/rankings")
	g.Post("/snapshot", ctl.Snapshot)
	g.Get("/daily", ctl.ListDay)
}
