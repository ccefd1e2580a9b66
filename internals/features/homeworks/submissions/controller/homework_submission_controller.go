package controller

import (
	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/features/homeworks/submissions/dto"
	"homework_backend/internals/features/homeworks/submissions/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type HomeworkSubmissionController struct {
	Svc *service.Service
}

func NewHomeworkSubmissionController(svc *service.Service) *HomeworkSubmissionController {
	return &HomeworkSubmissionController{Svc: svc}
}

/* =======================================================
   STUDENT (/api/s/homeworks)
   ======================================================= */

func (ctl *HomeworkSubmissionController) Submit(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.SubmitHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	row, err := ctl.Svc.Submit(c.UserContext(), sess, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "homework submitted", dto.FromModel(*row))
}

func (ctl *HomeworkSubmissionController) ListMine(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := ctl.Svc.ListMine(c.UserContext(), sess.StudentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "homework loaded", dto.FromModels(rows))
}

func (ctl *HomeworkSubmissionController) Today(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.Today(c.UserContext(), sess.StudentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "today status", out)
}

// GET /api/s/homeworks/stamps?month=YYYY-MM
func (ctl *HomeworkSubmissionController) Stamps(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var q dto.StampsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	out, err := ctl.Svc.Stamps(c.UserContext(), sess.StudentID, q.Month)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "stamps loaded", out)
}

func (ctl *HomeworkSubmissionController) Update(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	row, err := ctl.Svc.Update(c.UserContext(), sess, id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "homework updated", dto.FromModel(*row))
}

func (ctl *HomeworkSubmissionController) Delete(c *fiber.Ctx) error {
	sess, err := helperAuth.GetStudentSession(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.Delete(c.UserContext(), sess, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "homework deleted", out)
}

/* =======================================================
   TEACHER (/api/t)
   ======================================================= */

// GET /api/t/students/:id/homeworks
func (ctl *HomeworkSubmissionController) ReviewStudent(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	studentID, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.ReviewStudent(c.UserContext(), cls.ClassroomID, studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "student homework loaded", out)
}

// DELETE /api/t/homeworks/:id
func (ctl *HomeworkSubmissionController) TeacherDelete(c *fiber.Ctx) error {
	cls, err := helperAuth.GetClassroom(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Svc.TeacherDelete(c.UserContext(), cls.ClassroomID, id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "homework deleted", out)
}
