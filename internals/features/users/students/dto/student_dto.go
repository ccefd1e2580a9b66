package dto

import (
	"time"

	"github.com/google/uuid"

	"homework_backend/internals/features/users/students/model"
)

type CreateStudentRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

type RenameStudentRequest struct {
	Name string `json:"name" validate:"notblank,max=100"`
}

type StudentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClassroomID uuid.UUID `json:"classroom_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:          m.StudentID,
		Name:        m.StudentName,
		ClassroomID: m.StudentClassroomID,
		CreatedAt:   m.StudentCreatedAt,
	}
}

func FromModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
