package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is identified by (name, classroom_id); the pair is not unique in the table.
type StudentModel struct {
	StudentID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentName        string    `gorm:"column:name;type:varchar(100);not null;index:idx_students_classroom_name,priority:2" json:"name"`
	StudentClassroomID uuid.UUID `gorm:"column:classroom_id;type:uuid;not null;index:idx_students_classroom_name,priority:1" json:"classroom_id"`

	StudentCreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	StudentUpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }
