package dto

import (
	"github.com/google/uuid"

	classroomDTO "homework_backend/internals/features/classrooms/classrooms/dto"
	helperAuth "homework_backend/internals/helpers/auth"
)

type StudentLoginRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
	Code string `json:"code"`
}

type SessionStudent struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
}

type SessionTeacher struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SessionResponse is what GET /api/session and the student logins return.
// Token is only set when a new token was issued.
type SessionResponse struct {
	Role      string                         `json:"role"`
	Token     *helperAuth.IssuedToken        `json:"token,omitempty"`
	Student   *SessionStudent                `json:"student,omitempty"`
	Teacher   *SessionTeacher                `json:"teacher,omitempty"`
	Classroom classroomDTO.ClassroomResponse `json:"classroom"`
}
