package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
)

/* ============================================
   Locals Keys (AuthJWT / classroom scope set these)
   ============================================ */

const (
	LocRole           = "role"
	LocTeacher        = "teacher_identity" // TeacherIdentity
	LocStudentSession = "student_session"  // StudentSession
	LocClassroom      = "classroom"        // *classroomModel.ClassroomModel
)

func GetRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return s
	}
	return ""
}

func GetTeacherIdentity(c *fiber.Ctx) (TeacherIdentity, error) {
	if v, ok := c.Locals(LocTeacher).(TeacherIdentity); ok && v.TeacherID != uuid.Nil {
		return v, nil
	}
	return TeacherIdentity{}, fiber.NewError(fiber.StatusUnauthorized, "teacher login required")
}

func GetStudentSession(c *fiber.Ctx) (StudentSession, error) {
	if v, ok := c.Locals(LocStudentSession).(StudentSession); ok && v.StudentID != uuid.Nil {
		return v, nil
	}
	return StudentSession{}, fiber.NewError(fiber.StatusUnauthorized, "student session not found")
}

// GetClassroom returns the teacher's classroom resolved by the classroom scope middleware.
func GetClassroom(c *fiber.Ctx) (*classroomModel.ClassroomModel, error) {
	if v, ok := c.Locals(LocClassroom).(*classroomModel.ClassroomModel); ok && v != nil {
		return v, nil
	}
	return nil, fiber.NewError(fiber.StatusForbidden, "classroom not resolved")
}

// ParseUUIDParam reads a path param as UUID (400 when malformed).
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid id")
	}
	return id, nil
}

// BearerToken extracts the raw token from "Authorization: Bearer <token>".
func BearerToken(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}
