package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"homework_backend/internals/configs"
	"homework_backend/internals/constants"
	classroomDTO "homework_backend/internals/features/classrooms/classrooms/dto"
	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	"homework_backend/internals/features/users/session/dto"
	studentModel "homework_backend/internals/features/users/students/model"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

var ErrSessionGone = fiber.NewError(fiber.StatusUnauthorized, "your session is no longer valid, please join the classroom again")

type Classrooms interface {
	FindByCode(ctx context.Context, code string) (*classroomModel.ClassroomModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*classroomModel.ClassroomModel, error)
	EnsureForTeacher(ctx context.Context, email string) (*classroomModel.ClassroomModel, bool, error)
}

type Students interface {
	Get(ctx context.Context, classroomID, id uuid.UUID) (*studentModel.StudentModel, error)
	FindOrCreate(ctx context.Context, classroomID uuid.UUID, name string) (*studentModel.StudentModel, bool, error)
}

// Service resolves who is calling: a student carrying a session token, or a
// teacher whose classroom is looked up (and created if missing) by email.
type Service struct {
	classrooms Classrooms
	students   Students

	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewService(classrooms Classrooms, students Students) *Service {
	return &Service{
		classrooms: classrooms,
		students:   students,
		Secret:     configs.JWTSecret,
		TTL:        configs.StudentSessionTTL,
		Now:        time.Now,
	}
}

// StudentLogin joins a classroom by name and code. The classroom is looked up
// first; the student row is then found or created.
func (s *Service) StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (*dto.SessionResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	cls, err := s.classrooms.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	st, _, err := s.students.FindOrCreate(ctx, cls.ClassroomID, req.Name)
	if err != nil {
		return nil, err
	}
	return s.OpenStudentSession(cls, st, nil)
}

// OpenStudentSession issues a student token for an existing student row.
func (s *Service) OpenStudentSession(cls *classroomModel.ClassroomModel, st *studentModel.StudentModel, profileID *uuid.UUID) (*dto.SessionResponse, error) {
	sess := helperAuth.StudentSession{
		StudentID:     st.StudentID,
		Name:          st.StudentName,
		ClassroomID:   cls.ClassroomID,
		ClassroomName: cls.ClassroomName,
		ClassroomCode: cls.ClassroomCode,
		ProfileID:     profileID,
	}
	tok, err := helperAuth.IssueStudentToken(s.Secret, sess, s.TTL, s.Now())
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Role:      constants.RoleStudent,
		Token:     &tok,
		Student:   &dto.SessionStudent{ID: st.StudentID, Name: st.StudentName, ProfileID: profileID},
		Classroom: classroomDTO.FromModel(cls),
	}, nil
}

// ResolveStudent re-reads the student and classroom so renames, code changes and
// deletions made by the teacher are visible to the student.
func (s *Service) ResolveStudent(ctx context.Context, sess helperAuth.StudentSession) (*dto.SessionResponse, error) {
	cls, err := s.classrooms.FindByID(ctx, sess.ClassroomID)
	if err != nil {
		return nil, goneOnNotFound(err)
	}
	st, err := s.students.Get(ctx, cls.ClassroomID, sess.StudentID)
	if err != nil {
		return nil, goneOnNotFound(err)
	}
	return &dto.SessionResponse{
		Role:      constants.RoleStudent,
		Student:   &dto.SessionStudent{ID: st.StudentID, Name: st.StudentName, ProfileID: sess.ProfileID},
		Classroom: classroomDTO.FromModel(cls),
	}, nil
}

func (s *Service) ResolveTeacher(ctx context.Context, id helperAuth.TeacherIdentity) (*dto.SessionResponse, error) {
	cls, _, err := s.classrooms.EnsureForTeacher(ctx, id.Email)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Role:      constants.RoleTeacher,
		Teacher:   &dto.SessionTeacher{ID: id.TeacherID, Email: id.Email},
		Classroom: classroomDTO.FromModel(cls),
	}, nil
}

func goneOnNotFound(err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
		return ErrSessionGone
	}
	return err
}
