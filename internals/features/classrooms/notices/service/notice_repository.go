package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homework_backend/internals/features/classrooms/notices/model"
)

type Repository interface {
	ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]model.NoticeModel, error)
	ListActive(ctx context.Context, classroomID uuid.UUID, limit int) ([]model.NoticeModel, error)
	FindInClassroom(ctx context.Context, classroomID, id uuid.UUID) (*model.NoticeModel, error)
	Create(ctx context.Context, m *model.NoticeModel) error
	// UpdateFields reports false when no notice of the classroom has that id.
	UpdateFields(ctx context.Context, classroomID, id uuid.UUID, fields map[string]any) (bool, error)
	Delete(ctx context.Context, classroomID, id uuid.UUID) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]model.NoticeModel, error) {
	var rows []model.NoticeModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListActive(ctx context.Context, classroomID uuid.UUID, limit int) ([]model.NoticeModel, error) {
	var rows []model.NoticeModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ? AND is_active = TRUE", classroomID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) FindInClassroom(ctx context.Context, classroomID, id uuid.UUID) (*model.NoticeModel, error) {
	var m model.NoticeModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND classroom_id = ?", id, classroomID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) Create(ctx context.Context, m *model.NoticeModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormRepository) UpdateFields(ctx context.Context, classroomID, id uuid.UUID, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.NoticeModel{}).
		Where("id = ? AND classroom_id = ?", id, classroomID).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) Delete(ctx context.Context, classroomID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND classroom_id = ?", id, classroomID).
		Delete(&model.NoticeModel{})
	return res.RowsAffected > 0, res.Error
}
