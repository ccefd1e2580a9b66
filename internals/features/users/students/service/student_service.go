package service

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"homework_backend/internals/features/users/students/dto"
	"homework_backend/internals/features/users/students/model"
	helper "homework_backend/internals/helpers"
	ossHelper "homework_backend/internals/helpers/oss"
)

var ErrStudentNotFound = fiber.NewError(fiber.StatusNotFound, "student not found")

type Service struct {
	repo   Repository
	photos ossHelper.PhotoStore
}

// NewService: photos may be nil when submission photos never leave the row.
func NewService(repo Repository, photos ossHelper.PhotoStore) *Service {
	if photos == nil {
		photos = ossHelper.InlineStore{}
	}
	return &Service{repo: repo, photos: photos}
}

func (s *Service) List(ctx context.Context, classroomID uuid.UUID) ([]model.StudentModel, error) {
	return s.repo.ListByClassroom(ctx, classroomID)
}

func (s *Service) Get(ctx context.Context, classroomID, id uuid.UUID) (*model.StudentModel, error) {
	m, err := s.repo.FindInClassroom(ctx, classroomID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrStudentNotFound
	}
	return m, nil
}

func (s *Service) Create(ctx context.Context, classroomID uuid.UUID, req dto.CreateStudentRequest) (*model.StudentModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := &model.StudentModel{
		StudentName:        strings.TrimSpace(req.Name),
		StudentClassroomID: classroomID,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Rename(ctx context.Context, classroomID, id uuid.UUID, req dto.RenameStudentRequest) (*model.StudentModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	ok, err := s.repo.Rename(ctx, classroomID, id, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStudentNotFound
	}
	return s.Get(ctx, classroomID, id)
}

// Delete removes the student and every submission it made.
func (s *Service) Delete(ctx context.Context, classroomID, id uuid.UUID) error {
	ok, photos, err := s.repo.DeleteWithSubmissions(ctx, classroomID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStudentNotFound
	}
	for _, p := range photos {
		if err := s.photos.Delete(ctx, p); err != nil {
			log.Printf("[ERROR] delete photo of student %s: %v", id, err)
		}
	}
	return nil
}

// FindOrCreate looks the student up by (classroom, name) and inserts it when missing.
// Lookup and insert are two separate calls.
func (s *Service) FindOrCreate(ctx context.Context, classroomID uuid.UUID, name string) (*model.StudentModel, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, helper.NewFieldError("name", "name is required")
	}
	m, err := s.repo.FindByName(ctx, classroomID, name)
	if err != nil {
		return nil, false, err
	}
	if m != nil {
		return m, false, nil
	}
	m = &model.StudentModel{StudentName: name, StudentClassroomID: classroomID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, false, err
	}
	return m, true, nil
}
