package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"homework_backend/internals/features/homeworks/submissions/model"
)

type inmemRepository struct {
	lockMu sync.Mutex // plays the student row lock
	mu     sync.RWMutex
	rows   map[uuid.UUID]model.HomeworkSubmissionModel
	owner  map[uuid.UUID]uuid.UUID // student -> classroom
	calls  int
}

func newInmemRepository() *inmemRepository {
	return &inmemRepository{
		rows:  map[uuid.UUID]model.HomeworkSubmissionModel{},
		owner: map[uuid.UUID]uuid.UUID{},
	}
}

func (r *inmemRepository) count() {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
}

func (r *inmemRepository) RunInStudentLock(_ context.Context, _ uuid.UUID, fn func(tx Repository) error) error {
	r.count()
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	return fn(r)
}

func (r *inmemRepository) CountForDay(_ context.Context, studentID uuid.UUID, homeworkType string, start, end time.Time) (int64, error) {
	r.count()
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, row := range r.rows {
		at := row.HomeworkSubmissionSubmittedAt
		if row.HomeworkSubmissionStudentID == studentID && row.HomeworkSubmissionType == homeworkType &&
			!at.Before(start) && at.Before(end) {
			n++
		}
	}
	return n, nil
}

func (r *inmemRepository) Create(_ context.Context, m *model.HomeworkSubmissionModel) error {
	r.count()
	r.mu.Lock()
	defer r.mu.Unlock()
	m.HomeworkSubmissionID = uuid.New()
	r.rows[m.HomeworkSubmissionID] = *m
	return nil
}

func (r *inmemRepository) FindByID(_ context.Context, id uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	r.count()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[id]; ok {
		return &row, nil
	}
	return nil, nil
}

func (r *inmemRepository) FindInClassroom(_ context.Context, classroomID, id uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	r.count()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if row, ok := r.rows[id]; ok && r.owner[row.HomeworkSubmissionStudentID] == classroomID {
		return &row, nil
	}
	return nil, nil
}

func (r *inmemRepository) list(match func(model.HomeworkSubmissionModel) bool) []model.HomeworkSubmissionModel {
	var out []model.HomeworkSubmissionModel
	for _, row := range r.rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (r *inmemRepository) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.HomeworkSubmissionModel, error) {
	r.count()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.list(func(m model.HomeworkSubmissionModel) bool { return m.HomeworkSubmissionStudentID == studentID })
	sort.Slice(out, func(i, j int) bool {
		return out[i].HomeworkSubmissionSubmittedAt.After(out[j].HomeworkSubmissionSubmittedAt)
	})
	return out, nil
}

func (r *inmemRepository) ListByStudentBetween(_ context.Context, studentID uuid.UUID, start, end time.Time) ([]model.HomeworkSubmissionModel, error) {
	r.count()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.list(func(m model.HomeworkSubmissionModel) bool {
		at := m.HomeworkSubmissionSubmittedAt
		return m.HomeworkSubmissionStudentID == studentID && !at.Before(start) && at.Before(end)
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].HomeworkSubmissionSubmittedAt.Before(out[j].HomeworkSubmissionSubmittedAt)
	})
	return out, nil
}

func (r *inmemRepository) UpdateOwned(_ context.Context, studentID, id uuid.UUID, fields map[string]any) (bool, error) {
	r.count()
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.HomeworkSubmissionStudentID != studentID {
		return false, nil
	}
	row.HomeworkSubmissionTitle = fields["title"].(string)
	row.HomeworkSubmissionContent = fields["content"].(string)
	if v, ok := fields["photo"]; ok {
		if s, ok := v.(string); ok {
			row.HomeworkSubmissionPhoto = &s
		} else {
			row.HomeworkSubmissionPhoto = nil
		}
	}
	r.rows[id] = row
	return true, nil
}

func (r *inmemRepository) DeleteOwned(_ context.Context, studentID, id uuid.UUID) (int64, error) {
	r.count()
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[id]; ok && row.HomeworkSubmissionStudentID == studentID {
		delete(r.rows, id)
		return 1, nil
	}
	return 0, nil
}

func (r *inmemRepository) DeleteByID(_ context.Context, id uuid.UUID) (int64, error) {
	r.count()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; ok {
		delete(r.rows, id)
		return 1, nil
	}
	return 0, nil
}
