package model

import (
	"time"

	"github.com/google/uuid"
)

type HomeworkSubmissionModel struct {
	HomeworkSubmissionID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HomeworkSubmissionStudentID uuid.UUID  `gorm:"column:student_id;type:uuid;not null;index:idx_homework_student_submitted,priority:1" json:"student_id"`
	HomeworkSubmissionUserID    *uuid.UUID `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`

	HomeworkSubmissionType    string  `gorm:"column:homework_type;type:varchar(20);not null" json:"homework_type"`
	HomeworkSubmissionTitle   string  `gorm:"column:title;type:varchar(200)" json:"title"`
	HomeworkSubmissionContent string  `gorm:"column:content;type:text" json:"content"`
	HomeworkSubmissionPhoto   *string `gorm:"column:photo;type:text" json:"photo,omitempty"`
	HomeworkSubmissionPoints  int     `gorm:"column:points;not null;default:0" json:"points"`

	HomeworkSubmissionSubmittedAt time.Time `gorm:"column:submitted_at;type:timestamptz;not null;autoCreateTime;index:idx_homework_student_submitted,priority:2,sort:desc" json:"submitted_at"`
}

func (HomeworkSubmissionModel) TableName() string { return "homework_submissions" }
