package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DailyRankingModel struct {
	DailyRankingID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DailyRankingClassroomID uuid.UUID      `gorm:"column:classroom_id;type:uuid;not null;uniqueIndex:uq_daily_rankings_day,priority:1" json:"classroom_id"`
	DailyRankingStudentID   uuid.UUID      `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_daily_rankings_day,priority:2" json:"student_id"`
	DailyRankingDate        datatypes.Date `gorm:"column:ranking_date;type:date;not null;uniqueIndex:uq_daily_rankings_day,priority:3" json:"ranking_date"`
	DailyRankingPosition    int            `gorm:"column:rank_position;not null" json:"rank_position"`
	DailyRankingScore       int            `gorm:"column:score;not null" json:"score"`
	DailyRankingCreatedAt   time.Time      `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (DailyRankingModel) TableName() string { return "daily_rankings" }
