package service

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"homework_backend/internals/configs"
	"homework_backend/internals/constants"
	"homework_backend/internals/features/classrooms/classrooms/dto"
	"homework_backend/internals/features/classrooms/classrooms/model"
	helper "homework_backend/internals/helpers"
)

var (
	ErrClassroomNotFound = fiber.NewError(fiber.StatusNotFound, "classroom not found")
	ErrInvalidCode       = fiber.NewError(fiber.StatusNotFound, "invalid classroom code")
	ErrCodeTaken         = fiber.NewError(fiber.StatusConflict, "this code is already used by another classroom")
	ErrNoUniqueCode      = fiber.NewError(fiber.StatusServiceUnavailable, "could not generate a unique classroom code, please retry")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewUniqueCode draws random codes until one is unused.
func (s *Service) NewUniqueCode(ctx context.Context) (string, error) {
	for range maxCodeAttempts {
		code := GenerateCode()
		taken, err := s.repo.CodeTaken(ctx, code, uuid.Nil)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrNoUniqueCode
}

// Create inserts a classroom owned by email with a fresh code. A code collision
// between the check and the insert is retried.
func (s *Service) Create(ctx context.Context, email, name string) (*model.ClassroomModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = configs.DefaultClassroomName
	}
	for range maxCodeAttempts {
		code, err := s.NewUniqueCode(ctx)
		if err != nil {
			return nil, err
		}
		m := &model.ClassroomModel{
			ClassroomName:         name,
			ClassroomCode:         code,
			ClassroomTeacherEmail: strings.ToLower(strings.TrimSpace(email)),
		}
		err = s.repo.Create(ctx, m)
		if helper.IsUniqueViolation(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := s.repo.SyncTeacherCode(ctx, m.ClassroomTeacherEmail, m.ClassroomCode); err != nil {
			log.Printf("[ERROR] sync teacher classroom code (%s): %v", m.ClassroomTeacherEmail, err)
		}
		log.Printf("[INFO] classroom %s created for %s", m.ClassroomCode, m.ClassroomTeacherEmail)
		return m, nil
	}
	return nil, ErrNoUniqueCode
}

// GetMine returns the classroom owned by the teacher email.
func (s *Service) GetMine(ctx context.Context, email string) (*model.ClassroomModel, error) {
	m, err := s.repo.FindByTeacherEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrClassroomNotFound
	}
	return m, nil
}

// EnsureForTeacher returns the teacher's classroom, creating it when missing. The
// name comes from the teacher's pending classroom name, else the configured default.
func (s *Service) EnsureForTeacher(ctx context.Context, email string) (*model.ClassroomModel, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	m, err := s.repo.FindByTeacherEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if m != nil {
		return m, false, nil
	}
	name, err := s.repo.PendingClassroomName(ctx, email)
	if err != nil {
		return nil, false, err
	}
	m, err = s.Create(ctx, email, name)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (s *Service) FindByCode(ctx context.Context, code string) (*model.ClassroomModel, error) {
	code = NormalizeCode(code)
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrInvalidCode
	}
	return m, nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*model.ClassroomModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrClassroomNotFound
	}
	return m, nil
}

// UpdateCode sets a teacher-chosen code. The code is validated before any lookup.
func (s *Service) UpdateCode(ctx context.Context, c *model.ClassroomModel, code string) (*model.ClassroomModel, error) {
	code = strings.TrimSpace(code)
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	if code == c.ClassroomCode {
		return c, nil
	}
	taken, err := s.repo.CodeTaken(ctx, code, c.ClassroomID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCodeTaken
	}
	return s.setCode(ctx, c, code)
}

func (s *Service) RegenerateCode(ctx context.Context, c *model.ClassroomModel) (*model.ClassroomModel, error) {
	code, err := s.NewUniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	return s.setCode(ctx, c, code)
}

func (s *Service) setCode(ctx context.Context, c *model.ClassroomModel, code string) (*model.ClassroomModel, error) {
	err := s.repo.UpdateFields(ctx, c.ClassroomID, map[string]any{"code": code})
	if helper.IsUniqueViolation(err) {
		return nil, ErrCodeTaken
	}
	if err != nil {
		return nil, err
	}
	if err := s.repo.SyncTeacherCode(ctx, c.ClassroomTeacherEmail, code); err != nil {
		log.Printf("[ERROR] sync teacher classroom code (%s): %v", c.ClassroomTeacherEmail, err)
	}
	out := *c
	out.ClassroomCode = code
	return &out, nil
}

func (s *Service) Rename(ctx context.Context, c *model.ClassroomModel, req dto.RenameClassroomRequest) (*model.ClassroomModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if err := s.repo.UpdateFields(ctx, c.ClassroomID, map[string]any{"name": name}); err != nil {
		return nil, err
	}
	out := *c
	out.ClassroomName = name
	return &out, nil
}

func (s *Service) Stats(ctx context.Context, classroomID uuid.UUID) (dto.ClassroomStats, error) {
	students, homework, err := s.repo.CountStudentsAndHomework(ctx, classroomID)
	if err != nil {
		return dto.ClassroomStats{}, err
	}
	return dto.ClassroomStats{
		StudentCount:     students,
		HomeworkCount:    homework,
		AvgParticipation: ComputeStats(students, homework, constants.ExpectedSubmissionsPerStudent),
	}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]model.ClassroomModel, error) {
	return s.repo.ListAll(ctx)
}
