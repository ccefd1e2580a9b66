package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/progress/daily_rankings/dto"
	"homework_backend/internals/features/progress/daily_rankings/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type DailyRankingController struct {
	Svc *service.Service
}

func NewDailyRankingController(svc *service.Service) *DailyRankingController {
	return &DailyRankingController{Svc: svc}
}

// POST /api/t/rankings/snapshot?date=YYYY-MM-DD
func (ctl *DailyRankingController) Snapshot(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var q dto.SnapshotQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	out, err := ctl.Svc.Snapshot(c.UserContext(), cls.ClassroomID, q.Date)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "ranking snapshot saved", out)
}

// GET /api/t/rankings/daily?date=YYYY-MM-DD
func (ctl *DailyRankingController) ListDay(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var q dto.SnapshotQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	out, err := ctl.Svc.ListDay(c.UserContext(), cls.ClassroomID, q.Date)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "daily ranking loaded", out)
}
