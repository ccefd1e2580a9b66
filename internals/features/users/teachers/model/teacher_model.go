package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	TeacherID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TeacherEmail         string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_teachers_email" json:"email"`
	TeacherUsername      string    `gorm:"column:username;type:varchar(100);not null" json:"username"`
	TeacherPasswordHash  string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	TeacherClassroomCode string    `gorm:"column:classroom_code;type:varchar(5);not null;default:''" json:"classroom_code"`

	// Name given at sign-up, used when the session resolver has to create the classroom.
	TeacherPendingClassroomName *string `gorm:"column:pending_classroom_name;type:varchar(120)" json:"pending_classroom_name,omitempty"`

	TeacherCreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
