package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/users/teachers/dto"
	"homework_backend/internals/features/users/teachers/service"
	helper "homework_backend/internals/helpers"
)

type TeacherAuthController struct {
	Svc *service.Service
}

func NewTeacherAuthController(svc *service.Service) *TeacherAuthController {
	return &TeacherAuthController{Svc: svc}
}

// POST /api/auth/teacher/signup
func (ctl *TeacherAuthController) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := ctl.Svc.SignUp(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "account created", out)
}

// POST /api/auth/teacher/login
func (ctl *TeacherAuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := ctl.Svc.Login(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "logged in", out)
}
