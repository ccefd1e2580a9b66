package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"homework_backend/internals/features/classrooms/classrooms/model"
)

type inmemRepository struct {
	mu          sync.RWMutex
	classrooms  map[uuid.UUID]*model.ClassroomModel
	pending     map[string]string
	teacherCode map[string]string
	students    map[uuid.UUID]int64
	homework    map[uuid.UUID]int64
	calls       int
}

func newInmemRepository() *inmemRepository {
	return &inmemRepository{
		classrooms:  map[uuid.UUID]*model.ClassroomModel{},
		pending:     map[string]string{},
		teacherCode: map[string]string{},
		students:    map[uuid.UUID]int64{},
		homework:    map[uuid.UUID]int64{},
	}
}

func (r *inmemRepository) find(match func(*model.ClassroomModel) bool) *model.ClassroomModel {
	for _, c := range r.classrooms {
		if match(c) {
			cp := *c
			return &cp
		}
	}
	return nil
}

func (r *inmemRepository) FindByID(_ context.Context, id uuid.UUID) (*model.ClassroomModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.calls++
	return r.find(func(c *model.ClassroomModel) bool { return c.ClassroomID == id }), nil
}

func (r *inmemRepository) FindByCode(_ context.Context, code string) (*model.ClassroomModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.calls++
	return r.find(func(c *model.ClassroomModel) bool { return c.ClassroomCode == code }), nil
}

func (r *inmemRepository) FindByTeacherEmail(_ context.Context, email string) (*model.ClassroomModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.calls++
	return r.find(func(c *model.ClassroomModel) bool { return c.ClassroomTeacherEmail == email }), nil
}

func (r *inmemRepository) CodeTaken(_ context.Context, code string, exceptID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.calls++
	return r.find(func(c *model.ClassroomModel) bool {
		return c.ClassroomCode == code && c.ClassroomID != exceptID
	}) != nil, nil
}

func (r *inmemRepository) Create(_ context.Context, m *model.ClassroomModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	m.ClassroomID = uuid.New()
	m.ClassroomCreatedAt = time.Now()
	m.ClassroomUpdatedAt = m.ClassroomCreatedAt
	cp := *m
	r.classrooms[m.ClassroomID] = &cp
	return nil
}

func (r *inmemRepository) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	c, ok := r.classrooms[id]
	if !ok {
		return nil
	}
	if v, ok := fields["code"].(string); ok {
		c.ClassroomCode = v
	}
	if v, ok := fields["name"].(string); ok {
		c.ClassroomName = v
	}
	return nil
}

func (r *inmemRepository) ListAll(context.Context) ([]model.ClassroomModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ClassroomModel, 0, len(r.classrooms))
	for _, c := range r.classrooms {
		out = append(out, *c)
	}
	return out, nil
}

func (r *inmemRepository) CountStudentsAndHomework(_ context.Context, id uuid.UUID) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.students[id], r.homework[id], nil
}

func (r *inmemRepository) PendingClassroomName(_ context.Context, email string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pending[email], nil
}

func (r *inmemRepository) SyncTeacherCode(_ context.Context, email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teacherCode[email] = code
	return nil
}
