package dto

import (
	"time"

	"github.com/google/uuid"

	"homework_backend/internals/features/classrooms/notices/model"
)

// CreateNoticeRequest: IsActive defaults to true when omitted.
type CreateNoticeRequest struct {
	Title    string `json:"title" validate:"notblank,max=200"`
	Content  string `json:"content" validate:"notblank"`
	IsActive *bool  `json:"is_active"`
}

type UpdateNoticeRequest struct {
	Title    string `json:"title" validate:"notblank,max=200"`
	Content  string `json:"content" validate:"notblank"`
	IsActive bool   `json:"is_active"`
}

type NoticeResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		ID:        m.NoticeID,
		Title:     m.NoticeTitle,
		Content:   m.NoticeContent,
		IsActive:  m.NoticeIsActive,
		CreatedAt: m.NoticeCreatedAt,
		UpdatedAt: m.NoticeUpdatedAt,
	}
}

func FromModels(rows []model.NoticeModel) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
