package model

import (
	"time"

	"github.com/google/uuid"
)

type NoticeModel struct {
	NoticeID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NoticeClassroomID uuid.UUID `gorm:"column:classroom_id;type:uuid;not null;index:idx_notices_classroom_created,priority:1" json:"classroom_id"`

	NoticeTitle    string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	NoticeContent  string `gorm:"column:content;type:text;not null" json:"content"`
	NoticeIsActive bool   `gorm:"column:is_active;not null" json:"is_active"`

	NoticeCreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime;index:idx_notices_classroom_created,priority:2,sort:desc" json:"created_at"`
	NoticeUpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (NoticeModel) TableName() string { return "notices" }
