package dto

import (
	"time"

	"github.com/google/uuid"

	"homework_backend/internals/features/classrooms/classrooms/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// Format of the code is checked by service.ValidateCode so each failure gets its own message.
type UpdateCodeRequest struct {
	Code string `json:"code"`
}

type RenameClassroomRequest struct {
	Name string `json:"name" validate:"notblank,max=120"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ClassroomResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	TeacherEmail string    `json:"teacher_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicClassroomResponse is what students see before joining.
type PublicClassroomResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type ClassroomStats struct {
	StudentCount     int64 `json:"student_count"`
	HomeworkCount    int64 `json:"homework_count"`
	AvgParticipation int   `json:"avg_participation"`
}

func FromModel(m *model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ID:           m.ClassroomID,
		Name:         m.ClassroomName,
		Code:         m.ClassroomCode,
		TeacherEmail: m.ClassroomTeacherEmail,
		CreatedAt:    m.ClassroomCreatedAt,
		UpdatedAt:    m.ClassroomUpdatedAt,
	}
}

func ToPublic(m *model.ClassroomModel) PublicClassroomResponse {
	return PublicClassroomResponse{ID: m.ClassroomID, Name: m.ClassroomName, Code: m.ClassroomCode}
}
