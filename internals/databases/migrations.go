package database

import (
	"log"

	"gorm.io/gorm"

	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	noticeModel "homework_backend/internals/features/classrooms/notices/model"
	submissionModel "homework_backend/internals/features/homeworks/submissions/model"
	dailyRankingModel "homework_backend/internals/features/progress/daily_rankings/model"
	studentProfileModel "homework_backend/internals/features/users/student_profiles/model"
	studentModel "homework_backend/internals/features/users/students/model"
	teacherModel "homework_backend/internals/features/users/teachers/model"
)

// AutoMigrate creates or extends every table. It never drops columns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto extension: %v", err)
	}
	err := db.AutoMigrate(
		&teacherModel.TeacherModel{},
		&classroomModel.ClassroomModel{},
		&studentModel.StudentModel{},
		&studentProfileModel.StudentProfileModel{},
		&submissionModel.HomeworkSubmissionModel{},
		&noticeModel.NoticeModel{},
		&dailyRankingModel.DailyRankingModel{},
	)
	if err != nil {
		return err
	}
	log.Println("[INFO] migrations applied")
	return nil
}
