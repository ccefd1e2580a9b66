package dto

import (
	"time"

	"github.com/google/uuid"

	classroomDTO "homework_backend/internals/features/classrooms/classrooms/dto"
	"homework_backend/internals/features/users/teachers/model"
	helperAuth "homework_backend/internals/helpers/auth"
)

type SignUpRequest struct {
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
	Username      string `json:"username" validate:"omitempty,max=100"`
	ClassroomName string `json:"classroom_name" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TeacherResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	ClassroomCode string    `json:"classroom_code"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token     helperAuth.IssuedToken          `json:"token"`
	Teacher   TeacherResponse                 `json:"teacher"`
	Classroom *classroomDTO.ClassroomResponse `json:"classroom,omitempty"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:            m.TeacherID,
		Email:         m.TeacherEmail,
		Username:      m.TeacherUsername,
		ClassroomCode: m.TeacherClassroomCode,
		CreatedAt:     m.TeacherCreatedAt,
	}
}
