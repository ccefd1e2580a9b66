package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/progress/points/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type PointsController struct {
	Svc *service.Service
}

func NewPointsController(svc *service.Service) *PointsController {
	return &PointsController{Svc: svc}
}

// GET /api/s/points
func (ctl *PointsController) MySummary(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.Summary(c.UserContext(), sess.StudentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "points summary", out)
}

// GET /api/s/rankings
func (ctl *PointsController) StudentBoard(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.Board(c.UserContext(), sess.ClassroomID, sess.StudentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ranking loaded", out)
}

// GET /api/t/rankings/board
func (ctl *PointsController) TeacherBoard(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.Ranking(c.UserContext(), cls.ClassroomID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ranking loaded", out)
}

// GET /api/t/rankings
func (ctl *PointsController) Management(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.RankingWithSubmissions(c.UserContext(), cls.ClassroomID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ranking management loaded", out)
}
