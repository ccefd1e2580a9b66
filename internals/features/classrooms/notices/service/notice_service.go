package service

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"homework_backend/internals/features/classrooms/notices/dto"
	"homework_backend/internals/features/classrooms/notices/model"
	helper "homework_backend/internals/helpers"
)

// ActiveNoticeLimit is how many notices a student sees.
const ActiveNoticeLimit = 3

var ErrNoticeNotFound = fiber.NewError(fiber.StatusNotFound, "notice not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, classroomID uuid.UUID) ([]model.NoticeModel, error) {
	return s.repo.ListByClassroom(ctx, classroomID)
}

func (s *Service) ListActive(ctx context.Context, classroomID uuid.UUID) ([]model.NoticeModel, error) {
	return s.repo.ListActive(ctx, classroomID, ActiveNoticeLimit)
}

func (s *Service) Create(ctx context.Context, classroomID uuid.UUID, req dto.CreateNoticeRequest) (*model.NoticeModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	m := &model.NoticeModel{
		NoticeClassroomID: classroomID,
		NoticeTitle:       strings.TrimSpace(req.Title),
		NoticeContent:     strings.TrimSpace(req.Content),
		NoticeIsActive:    active,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, classroomID, id uuid.UUID, req dto.UpdateNoticeRequest) (*model.NoticeModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.apply(ctx, classroomID, id, map[string]any{
		"title":     strings.TrimSpace(req.Title),
		"content":   strings.TrimSpace(req.Content),
		"is_active": req.IsActive,
	})
}

// Toggle flips is_active.
func (s *Service) Toggle(ctx context.Context, classroomID, id uuid.UUID) (*model.NoticeModel, error) {
	m, err := s.get(ctx, classroomID, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, classroomID, id, map[string]any{"is_active": !m.NoticeIsActive})
}

func (s *Service) Delete(ctx context.Context, classroomID, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, classroomID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoticeNotFound
	}
	return nil
}

func (s *Service) apply(ctx context.Context, classroomID, id uuid.UUID, fields map[string]any) (*model.NoticeModel, error) {
	ok, err := s.repo.UpdateFields(ctx, classroomID, id, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoticeNotFound
	}
	return s.get(ctx, classroomID, id)
}

func (s *Service) get(ctx context.Context, classroomID, id uuid.UUID) (*model.NoticeModel, error) {
	m, err := s.repo.FindInClassroom(ctx, classroomID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNoticeNotFound
	}
	return m, nil
}
