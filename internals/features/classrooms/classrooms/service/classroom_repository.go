package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homework_backend/internals/features/classrooms/classrooms/model"
	submissionModel "homework_backend/internals/features/homeworks/submissions/model"
	studentModel "homework_backend/internals/features/users/students/model"
	teacherModel "homework_backend/internals/features/users/teachers/model"
)

// Repository is the storage used by Service. Find* return (nil, nil) when nothing matches.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ClassroomModel, error)
	FindByCode(ctx context.Context, code string) (*model.ClassroomModel, error)
	FindByTeacherEmail(ctx context.Context, email string) (*model.ClassroomModel, error)
	CodeTaken(ctx context.Context, code string, exceptID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.ClassroomModel) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	ListAll(ctx context.Context) ([]model.ClassroomModel, error)
	CountStudentsAndHomework(ctx context.Context, id uuid.UUID) (students int64, homework int64, err error)

	// teachers table
	PendingClassroomName(ctx context.Context, email string) (string, error)
	SyncTeacherCode(ctx context.Context, email, code string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) first(ctx context.Context, query string, args ...any) (*model.ClassroomModel, error) {
	var m model.ClassroomModel
	err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ClassroomModel, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormRepository) FindByCode(ctx context.Context, code string) (*model.ClassroomModel, error) {
	return r.first(ctx, "code = ?", code)
}

func (r *gormRepository) FindByTeacherEmail(ctx context.Context, email string) (*model.ClassroomModel, error) {
	var m model.ClassroomModel
	err := r.db.WithContext(ctx).
		Where("teacher_email = ?", email).
		Order("created_at ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) CodeTaken(ctx context.Context, code string, exceptID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.ClassroomModel{}).Where("code = ?", code)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *gormRepository) Create(ctx context.Context, m *model.ClassroomModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.ClassroomModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) ListAll(ctx context.Context) ([]model.ClassroomModel, error) {
	var rows []model.ClassroomModel
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *gormRepository) CountStudentsAndHomework(ctx context.Context, id uuid.UUID) (int64, int64, error) {
	var students, homework int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&studentModel.StudentModel{}).
		Where("classroom_id = ?", id).
		Count(&students).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&submissionModel.HomeworkSubmissionModel{}).
		Where("student_id IN (?)", db.Model(&studentModel.StudentModel{}).Select("id").Where("classroom_id = ?", id)).
		Count(&homework).Error; err != nil {
		return 0, 0, err
	}
	return students, homework, nil
}

func (r *gormRepository) PendingClassroomName(ctx context.Context, email string) (string, error) {
	var t teacherModel.TeacherModel
	err := r.db.WithContext(ctx).
		Select("pending_classroom_name").
		Where("email = ?", email).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil || t.TeacherPendingClassroomName == nil {
		return "", err
	}
	return *t.TeacherPendingClassroomName, nil
}

func (r *gormRepository) SyncTeacherCode(ctx context.Context, email, code string) error {
	return r.db.WithContext(ctx).
		Model(&teacherModel.TeacherModel{}).
		Where("email = ?", email).
		Update("classroom_code", code).Error
}
