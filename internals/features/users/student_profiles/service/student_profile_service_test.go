package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	sessionService "homework_backend/internals/features/users/session/service"
	"homework_backend/internals/features/users/student_profiles/dto"
	"homework_backend/internals/features/users/student_profiles/model"
	studentModel "homework_backend/internals/features/users/students/model"
	helperAuth "homework_backend/internals/helpers/auth"
)

type inmemProfiles struct {
	rows map[string]*model.StudentProfileModel
}

func (r *inmemProfiles) FindByEmail(_ context.Context, email string) (*model.StudentProfileModel, error) {
	return r.rows[email], nil
}

func (r *inmemProfiles) Create(_ context.Context, m *model.StudentProfileModel) error {
	m.StudentProfileID = uuid.New()
	r.rows[m.StudentProfileEmail] = m
	return nil
}

type oneClassroom struct {
	cls *classroomModel.ClassroomModel
}

func (o oneClassroom) FindByCode(_ context.Context, code string) (*classroomModel.ClassroomModel, error) {
	if classroomService.NormalizeCode(code) == o.cls.ClassroomCode {
		return o.cls, nil
	}
	return nil, classroomService.ErrInvalidCode
}

func (o oneClassroom) FindByID(_ context.Context, id uuid.UUID) (*classroomModel.ClassroomModel, error) {
	if id == o.cls.ClassroomID {
		return o.cls, nil
	}
	return nil, classroomService.ErrClassroomNotFound
}

func (o oneClassroom) EnsureForTeacher(context.Context, string) (*classroomModel.ClassroomModel, bool, error) {
	return o.cls, false, nil
}

type nameStudents struct {
	byName map[string]*studentModel.StudentModel
}

func (n *nameStudents) Get(_ context.Context, _, id uuid.UUID) (*studentModel.StudentModel, error) {
	for _, s := range n.byName {
		if s.StudentID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (n *nameStudents) FindOrCreate(_ context.Context, cid uuid.UUID, name string) (*studentModel.StudentModel, bool, error) {
	if s, ok := n.byName[name]; ok {
		return s, false, nil
	}
	s := &studentModel.StudentModel{StudentID: uuid.New(), StudentName: name, StudentClassroomID: cid}
	n.byName[name] = s
	return s, true, nil
}

func newTestService() (*Service, *inmemProfiles, *nameStudents) {
	cls := oneClassroom{cls: &classroomModel.ClassroomModel{ClassroomID: uuid.New(), ClassroomName: "Class 1", ClassroomCode: "LEMON"}}
	sts := &nameStudents{byName: map[string]*studentModel.StudentModel{}}
	sessions := sessionService.NewService(cls, sts)
	sessions.Secret = "test-secret"
	sessions.TTL = time.Hour
	profiles := &inmemProfiles{rows: map[string]*model.StudentProfileModel{}}
	return NewService(profiles, cls, sts, sessions), profiles, sts
}

func TestRegisterRequiresValidCode(t *testing.T) {
	svc, profiles, _ := newTestService()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "mia@example.com", Password: "secret1", Name: "Mia", Code: "APPLE"})
	assert.ErrorIs(t, err, classroomService.ErrInvalidCode)
	assert.Empty(t, profiles.rows)
}

func TestRegisterThenLogin(t *testing.T) {
	svc, profiles, sts := newTestService()

	out, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "Mia@Example.com", Password: "secret1", Name: " Mia ", Code: "lemon"})
	require.NoError(t, err)
	p := profiles.rows["mia@example.com"]
	require.NotNil(t, p)
	require.NotNil(t, out.Student.ProfileID)
	assert.Equal(t, p.StudentProfileID, *out.Student.ProfileID)
	assert.Len(t, sts.byName, 1)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Email: "mia@example.com", Password: "secret1", Name: "Mia", Code: "LEMON"})
	assert.ErrorIs(t, err, ErrEmailRegistered)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "mia@example.com", Password: "nope-nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	in, err := svc.Login(context.Background(), dto.LoginRequest{Email: "mia@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, out.Student.ID, in.Student.ID)

	_, _, sess, err := helperAuth.ParseToken("test-secret", in.Token.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, sess.ProfileID)
	assert.Equal(t, p.StudentProfileID, *sess.ProfileID)
}
