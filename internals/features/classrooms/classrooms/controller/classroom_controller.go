package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/classrooms/classrooms/dto"
	"homework_backend/internals/features/classrooms/classrooms/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type ClassroomController struct {
	Svc *service.Service
}

func NewClassroomController(svc *service.Service) *ClassroomController {
	return &ClassroomController{Svc: svc}
}

/* =======================================================
   TEACHER
   ======================================================= */

// GET /api/t/classroom
func (ctl *ClassroomController) GetMine(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "classroom loaded", dto.FromModel(cls))
}

// PATCH /api/t/classroom
func (ctl *ClassroomController) Rename(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.RenameClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := ctl.Svc.Rename(c.UserContext(), cls, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "classroom renamed", dto.FromModel(out))
}

// PUT /api/t/classroom/code
func (ctl *ClassroomController) UpdateCode(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	out, err := ctl.Svc.UpdateCode(c.UserContext(), cls, req.Code)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "classroom code updated", dto.FromModel(out))
}

// POST /api/t/classroom/code/regenerate
func (ctl *ClassroomController) RegenerateCode(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.RegenerateCode(c.UserContext(), cls)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "classroom code regenerated", dto.FromModel(out))
}

// GET /api/t/classroom/stats
func (ctl *ClassroomController) Stats(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	stats, err := ctl.Svc.Stats(c.UserContext(), cls.ClassroomID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "classroom stats", stats)
}

/* =======================================================
   PUBLIC
   ======================================================= */

// GET /api/public/classrooms/:code
func (ctl *ClassroomController) FindByCode(c *fiber.Ctx) error {
	cls, err := ctl.Svc.FindByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "classroom found", dto.ToPublic(cls))
}
