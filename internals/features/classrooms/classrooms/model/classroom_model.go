package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomModel struct {
	ClassroomID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClassroomName         string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	ClassroomCode         string    `gorm:"column:code;type:varchar(5);not null;uniqueIndex:uq_classrooms_code" json:"code"`
	ClassroomTeacherEmail string    `gorm:"column:teacher_email;type:varchar(255);not null;index:idx_classrooms_teacher_email" json:"teacher_email"`

	ClassroomCreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	ClassroomUpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
