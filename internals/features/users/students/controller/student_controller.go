package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/users/students/dto"
	"homework_backend/internals/features/users/students/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type StudentController struct {
	Svc *service.Service
}

func NewStudentController(svc *service.Service) *StudentController {
	return &StudentController{Svc: svc}
}

// GET /api/t/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := ctl.Svc.List(c.UserContext(), cls.ClassroomID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "students loaded", dto.FromModels(rows))
}

// POST /api/t/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	m, err := ctl.Svc.Create(c.UserContext(), cls.ClassroomID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "student added", dto.FromModel(*m))
}

// PATCH /api/t/students/:id
func (ctl *StudentController) Rename(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.RenameStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	m, err := ctl.Svc.Rename(c.UserContext(), cls.ClassroomID, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "student renamed", dto.FromModel(*m))
}

// DELETE /api/t/students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), cls.ClassroomID, id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"id": id})
}
