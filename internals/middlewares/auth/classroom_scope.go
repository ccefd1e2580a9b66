package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	helperAuth "homework_backend/internals/helpers/auth"
)

type ClassroomEnsurer interface {
	EnsureForTeacher(ctx context.Context, email string) (*classroomModel.ClassroomModel, bool, error)
}

// TeacherClassroomScope resolves (or creates) the classroom owned by the logged-in
// teacher. Every /api/t handler works inside that classroom.
func TeacherClassroomScope(classrooms ClassroomEnsurer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helperAuth.GetTeacherIdentity(c)
		if err != nil {
			return err
		}
		cls, _, err := classrooms.EnsureForTeacher(c.UserContext(), id.Email)
		if err != nil {
			return err
		}
		c.Locals(helperAuth.LocClassroom, cls)
		return c.Next()
	}
}
