package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"homework_backend/internals/configs"
	classroomDTO "homework_backend/internals/features/classrooms/classrooms/dto"
	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	"homework_backend/internals/features/users/teachers/dto"
	"homework_backend/internals/features/users/teachers/model"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

var (
	ErrEmailRegistered    = fiber.NewError(fiber.StatusConflict, "email is already registered")
	ErrInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
)

// ClassroomEnsurer is the part of the classroom service teachers need.
type ClassroomEnsurer interface {
	EnsureForTeacher(ctx context.Context, email string) (*classroomModel.ClassroomModel, bool, error)
}

type Service struct {
	repo       Repository
	classrooms ClassroomEnsurer

	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewService(repo Repository, classrooms ClassroomEnsurer) *Service {
	return &Service{
		repo:       repo,
		classrooms: classrooms,
		Secret:     configs.JWTSecret,
		TTL:        configs.JWTTTL,
		Now:        time.Now,
	}
}

// SignUp stores the teacher with a bcrypt hash, creates the classroom named at
// sign-up and logs the teacher in.
func (s *Service) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	req.ClassroomName = strings.TrimSpace(req.ClassroomName)
	if err := helper.ValidateStruct(req); err != nil {
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
	username := req.Username
	if username == "" {
		username, _, _ = strings.Cut(req.Email, "@")
	}
	t := &model.TeacherModel{
		TeacherEmail:        req.Email,
		TeacherUsername:     username,
		TeacherPasswordHash: string(hash),
	}
	if req.ClassroomName != "" {
		t.TeacherPendingClassroomName = &req.ClassroomName
	}
	if err := s.repo.Create(ctx, t); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}
	log.Printf("[INFO] teacher signed up: %s", t.TeacherEmail)

	return s.issue(ctx, t)
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	t, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(t.TeacherPasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, t)
}

func (s *Service) issue(ctx context.Context, t *model.TeacherModel) (*dto.AuthResponse, error) {
	out := &dto.AuthResponse{Teacher: dto.FromModel(t)}

	cls, _, err := s.classrooms.EnsureForTeacher(ctx, t.TeacherEmail)
	if err != nil {
		return nil, err
	}
	resp := classroomDTO.FromModel(cls)
	out.Classroom = &resp
	out.Teacher.ClassroomCode = cls.ClassroomCode

	tok, err := helperAuth.IssueTeacherToken(s.Secret, helperAuth.TeacherIdentity{
		TeacherID: t.TeacherID,
		Email:     t.TeacherEmail,
	}, s.TTL, s.Now())
	if err != nil {
		return nil, err
	}
	out.Token = tok
	return out, nil
}
