package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	submissionModel "homework_backend/internals/features/homeworks/submissions/model"
	studentModel "homework_backend/internals/features/users/students/model"
)

type Repository interface {
	ListStudents(ctx context.Context, classroomID uuid.UUID) ([]studentModel.StudentModel, error)
	ListClassroomSubmissions(ctx context.Context, classroomID uuid.UUID) ([]submissionModel.HomeworkSubmissionModel, error)
	ListStudentSubmissions(ctx context.Context, studentID uuid.UUID) ([]submissionModel.HomeworkSubmissionModel, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListStudents(ctx context.Context, classroomID uuid.UUID) ([]studentModel.StudentModel, error) {
	var rows []studentModel.StudentModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListClassroomSubmissions(ctx context.Context, classroomID uuid.UUID) ([]submissionModel.HomeworkSubmissionModel, error) {
	var rows []submissionModel.HomeworkSubmissionModel
	err := r.db.WithContext(ctx).
		Where("student_id IN (?)", r.db.Model(&studentModel.StudentModel{}).Select("id").Where("classroom_id = ?", classroomID)).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) ListStudentSubmissions(ctx context.Context, studentID uuid.UUID) ([]submissionModel.HomeworkSubmissionModel, error) {
	var rows []submissionModel.HomeworkSubmissionModel
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}
