package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	submissionModel "homework_backend/internals/features/homeworks/submissions/model"
	"homework_backend/internals/features/users/students/model"
)

type Repository interface {
	ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]model.StudentModel, error)
	FindInClassroom(ctx context.Context, classroomID, id uuid.UUID) (*model.StudentModel, error)
	FindByName(ctx context.Context, classroomID uuid.UUID, name string) (*model.StudentModel, error)
	Create(ctx context.Context, m *model.StudentModel) error
	Rename(ctx context.Context, classroomID, id uuid.UUID, name string) (bool, error)
	// DeleteWithSubmissions removes the student and its submissions and returns the
	// photo refs of the removed submissions.
	DeleteWithSubmissions(ctx context.Context, classroomID, id uuid.UUID) (deleted bool, photos []string, err error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]model.StudentModel, error) {
	var rows []model.StudentModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) FindInClassroom(ctx context.Context, classroomID, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND classroom_id = ?", id, classroomID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) FindByName(ctx context.Context, classroomID uuid.UUID, name string) (*model.StudentModel, error) {
	var m model.StudentModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ? AND name = ?", classroomID, name).
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

func (r *gormRepository) Create(ctx context.Context, m *model.StudentModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormRepository) Rename(ctx context.Context, classroomID, id uuid.UUID, name string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ? AND classroom_id = ?", id, classroomID).
		Update("name", name)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteWithSubmissions(ctx context.Context, classroomID, id uuid.UUID) (bool, []string, error) {
	var (
		deleted bool
		photos  []string
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st model.StudentModel
		if err := tx.Where("id = ? AND classroom_id = ?", id, classroomID).First(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Model(&submissionModel.HomeworkSubmissionModel{}).
			Where("student_id = ? AND photo IS NOT NULL", id).
			Pluck("photo", &photos).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&submissionModel.HomeworkSubmissionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&st).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, photos, err
}
