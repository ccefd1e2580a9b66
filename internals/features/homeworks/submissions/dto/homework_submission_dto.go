package dto

import (
	"time"

	"github.com/google/uuid"

	"homework_backend/internals/constants"
	"homework_backend/internals/features/homeworks/submissions/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// Photo is an optional image data URL ("data:image/png;base64,...").
type SubmitHomeworkRequest struct {
	HomeworkType string  `json:"homework_type" validate:"required,hwtype"`
	Title        string  `json:"title" validate:"notblank,max=200"`
	Content      string  `json:"content" validate:"notblank"`
	Photo        *string `json:"photo"`
}

// Photo: nil keeps the current photo, "" removes it, a data URL replaces it.
type UpdateHomeworkRequest struct {
	Title   string  `json:"title" validate:"notblank,max=200"`
	Content string  `json:"content" validate:"notblank"`
	Photo   *string `json:"photo"`
}

type StampsQuery struct {
	Month string `query:"month"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type HomeworkSubmissionResponse struct {
	ID           uuid.UUID  `json:"id"`
	StudentID    uuid.UUID  `json:"student_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	HomeworkType string     `json:"homework_type"`
	TypeLabel    string     `json:"type_label"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Photo        *string    `json:"photo,omitempty"`
	Points       int        `json:"points"`
	SubmittedAt  time.Time  `json:"submitted_at"`
}

type TodayStatus struct {
	Date      string          `json:"date"`
	Submitted map[string]bool `json:"submitted"`
}

type DeleteResult struct {
	ID             uuid.UUID `json:"id"`
	HomeworkType   string    `json:"homework_type"`
	PointsDeducted int       `json:"points_deducted"`
}

// StudentHomeworkReview is the teacher view of one student's work.
type StudentHomeworkReview struct {
	StudentID     uuid.UUID                    `json:"student_id"`
	StudentName   string                       `json:"student_name"`
	TotalPoints   int                          `json:"total_points"`
	AveragePoints int                          `json:"average_points"`
	Count         int                          `json:"count"`
	Submissions   []HomeworkSubmissionResponse `json:"submissions"`
}

type DayStamp struct {
	Date  string   `json:"date"`
	Types []string `json:"types"`
}

type MonthStamps struct {
	Month string     `json:"month"`
	Days  []DayStamp `json:"days"`
}

func FromModel(m model.HomeworkSubmissionModel) HomeworkSubmissionResponse {
	label := m.HomeworkSubmissionType
	if info, ok := constants.LookupHomeworkType(m.HomeworkSubmissionType); ok {
		label = info.Label
	}
	return HomeworkSubmissionResponse{
		ID:           m.HomeworkSubmissionID,
		StudentID:    m.HomeworkSubmissionStudentID,
		UserID:       m.HomeworkSubmissionUserID,
		HomeworkType: m.HomeworkSubmissionType,
		TypeLabel:    label,
		Title:        m.HomeworkSubmissionTitle,
		Content:      m.HomeworkSubmissionContent,
		Photo:        m.HomeworkSubmissionPhoto,
		Points:       m.HomeworkSubmissionPoints,
		SubmittedAt:  m.HomeworkSubmissionSubmittedAt,
	}
}

func FromModels(rows []model.HomeworkSubmissionModel) []HomeworkSubmissionResponse {
	out := make([]HomeworkSubmissionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
