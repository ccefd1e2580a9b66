package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homework_backend/internals/features/homeworks/submissions/model"
	studentModel "homework_backend/internals/features/users/students/model"
)

type Repository interface {
	// RunInStudentLock runs fn in one transaction holding a row lock on the student.
	RunInStudentLock(ctx context.Context, studentID uuid.UUID, fn func(tx Repository) error) error

	CountForDay(ctx context.Context, studentID uuid.UUID, homeworkType string, start, end time.Time) (int64, error)
	Create(ctx context.Context, m *model.HomeworkSubmissionModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.HomeworkSubmissionModel, error)
	FindInClassroom(ctx context.Context, classroomID, id uuid.UUID) (*model.HomeworkSubmissionModel, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.HomeworkSubmissionModel, error)
	ListByStudentBetween(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]model.HomeworkSubmissionModel, error)
	UpdateOwned(ctx context.Context, studentID, id uuid.UUID, fields map[string]any) (bool, error)
	DeleteOwned(ctx context.Context, studentID, id uuid.UUID) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) RunInStudentLock(ctx context.Context, studentID uuid.UUID, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st studentModel.StudentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", studentID).
			First(&st).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentGone
		}
		if err != nil {
			return err
		}
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) CountForDay(ctx context.Context, studentID uuid.UUID, homeworkType string, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.HomeworkSubmissionModel{}).
		Where("student_id = ? AND homework_type = ?", studentID, homeworkType).
		Where("submitted_at >= ? AND submitted_at < ?", start, end).
		Count(&n).Error
	return n, err
}

func (r *gormRepository) Create(ctx context.Context, m *model.HomeworkSubmissionModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	var m model.HomeworkSubmissionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) FindInClassroom(ctx context.Context, classroomID, id uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	var m model.HomeworkSubmissionModel
	err := r.db.WithContext(ctx).
		Joins("JOIN students ON students.id = homework_submissions.student_id").
		Where("homework_submissions.id = ? AND students.classroom_id = ?", id, classroomID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.HomeworkSubmissionModel, error) {
	var rows []model.HomeworkSubmissionModel
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListByStudentBetween(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]model.HomeworkSubmissionModel, error) {
	var rows []model.HomeworkSubmissionModel
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND submitted_at >= ? AND submitted_at < ?", studentID, start, end).
		Order("submitted_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) UpdateOwned(ctx context.Context, studentID, id uuid.UUID, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.HomeworkSubmissionModel{}).
		Where("id = ? AND student_id = ?", id, studentID).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteOwned(ctx context.Context, studentID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Delete(&model.HomeworkSubmissionModel{})
	return res.RowsAffected, res.Error
}

func (r *gormRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HomeworkSubmissionModel{})
	return res.RowsAffected, res.Error
}
