package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/users/student_profiles/dto"
	"homework_backend/internals/features/users/student_profiles/service"
	helper "homework_backend/internals/helpers"
)

type StudentProfileController struct {
	Svc *service.Service
}

func NewStudentProfileController(svc *service.Service) *StudentProfileController {
	return &StudentProfileController{Svc: svc}
}

// POST /api/auth/student/register
func (ctl *StudentProfileController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := ctl.Svc.Register(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "account created", out)
}

// POST /api/auth/student/login
func (ctl *StudentProfileController) Login(c *fiber.Ctx) error {
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
