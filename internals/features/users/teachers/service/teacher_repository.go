package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homework_backend/internals/features/users/teachers/model"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*model.TeacherModel, error)
	Create(ctx context.Context, m *model.TeacherModel) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*model.TeacherModel, error) {
	var m model.TeacherModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) Create(ctx context.Context, m *model.TeacherModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}
