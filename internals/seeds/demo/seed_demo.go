package demo

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	classroomService "homework_backend/internals/features/classrooms/classrooms/service"
	noticeDTO "homework_backend/internals/features/classrooms/notices/dto"
	noticeService "homework_backend/internals/features/classrooms/notices/service"
	studentDTO "homework_backend/internals/features/users/students/dto"
	studentService "homework_backend/internals/features/users/students/service"
	teacherDTO "homework_backend/internals/features/users/teachers/dto"
	teacherService "homework_backend/internals/features/users/teachers/service"
)

type NoticeSeed struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"is_active"`
}

type DemoSeed struct {
	Email         string       `json:"email"`
	Password      string       `json:"password"`
	Username      string       `json:"username"`
	ClassroomName string       `json:"classroom_name"`
	Students      []string     `json:"students"`
	Notices       []NoticeSeed `json:"notices"`
}

// SeedDemoFromJSON signs up each teacher through the regular service, then fills the
// classroom. Teachers that already exist are skipped as a whole.
func SeedDemoFromJSON(db *gorm.DB, filePath string) {
	log.Println("[SEED] reading", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] read %s: %v", filePath, err)
		return
	}
	var inputs []DemoSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Printf("[SEED] decode %s: %v", filePath, err)
		return
	}

	ctx := context.Background()
	classrooms := classroomService.NewService(classroomService.NewGormRepository(db))
	teachers := teacherService.NewService(teacherService.NewGormRepository(db), classrooms)
	students := studentService.NewService(studentService.NewGormRepository(db), nil)
	notices := noticeService.NewService(noticeService.NewGormRepository(db))

	for _, data := range inputs {
		auth, err := teachers.SignUp(ctx, teacherDTO.SignUpRequest{
			Email:         data.Email,
			Password:      data.Password,
			Username:      data.Username,
			ClassroomName: data.ClassroomName,
		})
		if errors.Is(err, teacherService.ErrEmailRegistered) {
			log.Printf("[SEED] teacher %s already exists, skipped", data.Email)
			continue
		}
		if err != nil {
			log.Printf("[SEED] teacher %s: %v", data.Email, err)
			continue
		}
		cid := auth.Classroom.ID

		for _, name := range data.Students {
			if _, err := students.Create(ctx, cid, studentDTO.CreateStudentRequest{Name: name}); err != nil {
				log.Printf("[SEED] student %q: %v", name, err)
			}
		}
		for _, n := range data.Notices {
			req := noticeDTO.CreateNoticeRequest{Title: n.Title, Content: n.Content, IsActive: n.IsActive}
			if _, err := notices.Create(ctx, cid, req); err != nil {
				log.Printf("[SEED] notice %q: %v", n.Title, err)
			}
		}
		log.Printf("[SEED] teacher %s, classroom %s (%s): %d students, %d notices",
			data.Email, auth.Classroom.Name, auth.Classroom.Code, len(data.Students), len(data.Notices))
	}
}
