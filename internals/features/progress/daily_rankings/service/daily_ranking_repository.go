package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homework_backend/internals/features/progress/daily_rankings/dto"
	"homework_backend/internals/features/progress/daily_rankings/model"
)

type Repository interface {
	// Upsert writes rows keyed by (classroom_id, student_id, ranking_date).
	Upsert(ctx context.Context, rows []model.DailyRankingModel) error
	ListDay(ctx context.Context, classroomID uuid.UUID, day time.Time) ([]dto.DailyRankingRow, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Upsert(ctx context.Context, rows []model.DailyRankingModel) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "classroom_id"},
				{Name: "student_id"},
				{Name: "ranking_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"rank_position", "score"}),
		}).
		CreateInBatches(rows, 200).Error
}

func (r *gormRepository) ListDay(ctx context.Context, classroomID uuid.UUID, day time.Time) ([]dto.DailyRankingRow, error) {
	var rows []dto.DailyRankingRow
	err := r.db.WithContext(ctx).
		Table("daily_rankings AS dr").
		Select("dr.student_id, s.name AS student_name, dr.rank_position, dr.score, dr.ranking_date").
		Joins("JOIN students s ON s.id = dr.student_id").
		Where("dr.classroom_id = ? AND dr.ranking_date = ?", classroomID, datatypes.Date(day)).
		Order("dr.rank_position ASC").
		Scan(&rows).Error
	return rows, err
}
