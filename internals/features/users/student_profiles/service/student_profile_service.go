package service

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	sessionDTO "homework_backend/internals/features/users/session/dto"
	sessionService "homework_backend/internals/features/users/session/service"
	"homework_backend/internals/features/users/student_profiles/dto"
	"homework_backend/internals/features/users/student_profiles/model"
	helper "homework_backend/internals/helpers"
)

var (
	ErrEmailRegistered    = fiber.NewError(fiber.StatusConflict, "email is already registered")
	ErrInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	ErrNoClassroom        = fiber.NewError(fiber.StatusConflict, "this account is not linked to a classroom")
)

// Service handles the optional email + password student accounts. A successful
// register or login yields the same student session as the code login.
type Service struct {
	repo       Repository
	classrooms sessionService.Classrooms
	students   sessionService.Students
	sessions   *sessionService.Service
}

func NewService(repo Repository, classrooms sessionService.Classrooms, students sessionService.Students, sessions *sessionService.Service) *Service {
	return &Service{repo: repo, classrooms: classrooms, students: students, sessions: sessions}
}

func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (*sessionDTO.SessionResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	cls, err := s.classrooms.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p := &model.StudentProfileModel{
		StudentProfileName:         req.Name,
		StudentProfileClassroomID:  &cls.ClassroomID,
		StudentProfileEmail:        req.Email,
		StudentProfilePasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}
	log.Printf("[INFO] student account registered: %s (classroom %s)", p.StudentProfileEmail, cls.ClassroomCode)

	st, _, err := s.students.FindOrCreate(ctx, cls.ClassroomID, p.StudentProfileName)
	if err != nil {
		return nil, err
	}
	return s.sessions.OpenStudentSession(cls, st, &p.StudentProfileID)
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*sessionDTO.SessionResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if p == nil || bcrypt.CompareHashAndPassword([]byte(p.StudentProfilePasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if p.StudentProfileClassroomID == nil {
		return nil, ErrNoClassroom
	}
	cls, err := s.classrooms.FindByID(ctx, *p.StudentProfileClassroomID)
	if err != nil {
		return nil, err
	}
	st, _, err := s.students.FindOrCreate(ctx, cls.ClassroomID, p.StudentProfileName)
	if err != nil {
		return nil, err
	}
	return s.sessions.OpenStudentSession(cls, st, &p.StudentProfileID)
}
