package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/constants"
	"homework_backend/internals/features/users/session/dto"
	"homework_backend/internals/features/users/session/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type SessionController struct {
	Svc *service.Service
}

func NewSessionController(svc *service.Service) *SessionController {
	return &SessionController{Svc: svc}
}

// POST /api/auth/student/session
func (ctl *SessionController) StudentLogin(c *fiber.Ctx) error {
	var req dto.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := ctl.Svc.StudentLogin(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "welcome, "+out.Student.Name, out)
}

// GET /api/session
func (ctl *SessionController) Resolve(c *fiber.Ctx) error {
	var (
		out *dto.SessionResponse
		err error
	)
	switch helperAuth.GetRole(c) {
	case constants.RoleStudent:
		sess, e := helperAuth.GetStudentSession(c)
		if e != nil {
			return helper.JsonFromError(c, e)
		}
		out, err = ctl.Svc.ResolveStudent(c.UserContext(), sess)
	case constants.RoleTeacher:
		id, e := helperAuth.GetTeacherIdentity(c)
		if e != nil {
			return helper.JsonFromError(c, e)
		}
		out, err = ctl.Svc.ResolveTeacher(c.UserContext(), id)
	default:
		return helper.JsonError(c, fiber.StatusUnauthorized, "no active session")
	}
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "session resolved", out)
}
