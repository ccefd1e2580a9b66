package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/classrooms/notices/dto"
	"homework_backend/internals/features/classrooms/notices/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type NoticeController struct {
	Svc *service.Service
}

func NewNoticeController(svc *service.Service) *NoticeController {
	return &NoticeController{Svc: svc}
}

// GET /api/t/notices
func (ctl *NoticeController) List(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := ctl.Svc.List(c.UserContext(), cls.ClassroomID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "notices loaded", dto.FromModels(rows))
}

// POST /api/t/notices
func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	m, err := ctl.Svc.Create(c.UserContext(), cls.ClassroomID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "notice created", dto.FromModel(*m))
}

// PUT /api/t/notices/:id
func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	m, err := ctl.Svc.Update(c.UserContext(), cls.ClassroomID, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "notice updated", dto.FromModel(*m))
}

// PATCH /api/t/notices/:id/toggle
func (ctl *NoticeController) Toggle(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	m, err := ctl.Svc.Toggle(c.UserContext(), cls.ClassroomID, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "notice toggled", dto.FromModel(*m))
}

// DELETE /api/t/notices/:id
func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "notice deleted", fiber.Map{"id": id})
}

// GET /api/s/notices
func (ctl *NoticeController) ListActive(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := ctl.Svc.ListActive(c.UserContext(), sess.ClassroomID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "notices loaded", dto.FromModels(rows))
}
