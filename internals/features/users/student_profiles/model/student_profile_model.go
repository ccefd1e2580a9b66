package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentProfileModel struct {
	StudentProfileID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentProfileName         string     `gorm:"column:name;type:varchar(100);not null" json:"name"`
	StudentProfileClassroomID  *uuid.UUID `gorm:"column:classroom_id;type:uuid" json:"classroom_id,omitempty"`
	StudentProfileEmail        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_student_profiles_email" json:"email"`
	StudentProfilePasswordHash string     `gorm:"column:password_hash;type:text;not null" json:"-"`

	StudentProfileCreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	StudentProfileUpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }
