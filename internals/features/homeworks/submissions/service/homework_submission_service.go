package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"homework_backend/internals/constants"
	"homework_backend/internals/features/homeworks/submissions/dto"
	"homework_backend/internals/features/homeworks/submissions/model"
	studentModel "homework_backend/internals/features/users/students/model"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
	"homework_backend/internals/helpers/dbtime"
	ossHelper "homework_backend/internals/helpers/oss"
)

var (
	ErrHomeworkNotFound = fiber.NewError(fiber.StatusNotFound, "homework not found")
	ErrStudentGone      = fiber.NewError(fiber.StatusUnauthorized, "your session is no longer valid, please join the classroom again")
)

// ErrAlreadySubmitted is returned when the student already handed in this type today.
func ErrAlreadySubmitted(label string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("%s can only be submitted once per day", label))
}

type Students interface {
	Get(ctx context.Context, classroomID, id uuid.UUID) (*studentModel.StudentModel, error)
}

type Service struct {
	repo     Repository
	students Students
	photos   ossHelper.PhotoStore

	Now func() time.Time
}

func NewService(repo Repository, students Students, photos ossHelper.PhotoStore) *Service {
	if photos == nil {
		photos = ossHelper.InlineStore{}
	}
	return &Service{repo: repo, students: students, photos: photos, Now: time.Now}
}

/* =======================================================
   STUDENT
   ======================================================= */

// Submit validates the form, then checks and inserts under the student row lock so
// one (student, type) pair gets at most one row per calendar day.
func (s *Service) Submit(ctx context.Context, sess helperAuth.StudentSession, req dto.SubmitHomeworkRequest) (*model.HomeworkSubmissionModel, error) {
	req.HomeworkType = strings.TrimSpace(req.HomeworkType)
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	info, _ := constants.LookupHomeworkType(req.HomeworkType)

	photo, err := decodePhoto(req.Photo)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	start, end := dbtime.DayRange(now)
	row := &model.HomeworkSubmissionModel{
		HomeworkSubmissionStudentID:   sess.StudentID,
		HomeworkSubmissionUserID:      sess.ProfileID,
		HomeworkSubmissionType:        info.Type,
		HomeworkSubmissionTitle:       req.Title,
		HomeworkSubmissionContent:     req.Content,
		HomeworkSubmissionPoints:      info.Points,
		HomeworkSubmissionSubmittedAt: now,
	}

	err = s.repo.RunInStudentLock(ctx, sess.StudentID, func(tx Repository) error {
		n, err := tx.CountForDay(ctx, sess.StudentID, info.Type, start, end)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadySubmitted(info.Label)
		}
		if photo != nil {
			ref, err := s.photos.Save(ctx, sess.StudentID.String(), photo)
			if err != nil {
				return err
			}
			row.HomeworkSubmissionPhoto = &ref
		}
		if err := tx.Create(ctx, row); err != nil {
			s.dropPhoto(ctx, row.HomeworkSubmissionPhoto)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] homework %s submitted by student %s (+%d)", info.Type, sess.StudentID, info.Points)
	return row, nil
}

func (s *Service) ListMine(ctx context.Context, studentID uuid.UUID) ([]model.HomeworkSubmissionModel, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// Today reports, for every homework type, whether it was submitted today.
func (s *Service) Today(ctx context.Context, studentID uuid.UUID) (dto.TodayStatus, error) {
	now := s.Now()
	start, end := dbtime.DayRange(now)
	rows, err := s.repo.ListByStudentBetween(ctx, studentID, start, end)
	if err != nil {
		return dto.TodayStatus{}, err
	}
	out := dto.TodayStatus{Date: dbtime.DayKey(now), Submitted: make(map[string]bool, len(constants.HomeworkTypes))}
	for _, ht := range constants.HomeworkTypes {
		out.Submitted[ht.Type] = false
	}
	for _, r := range rows {
		out.Submitted[r.HomeworkSubmissionType] = true
	}
	return out, nil
}

// Update edits title, content and photo of the caller's own submission. Type and
// points never change.
func (s *Service) Update(ctx context.Context, sess helperAuth.StudentSession, id uuid.UUID, req dto.UpdateHomeworkRequest) (*model.HomeworkSubmissionModel, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var (
		photo    *ossHelper.Photo
		clearing bool
	)
	if req.Photo != nil {
		if strings.TrimSpace(*req.Photo) == "" {
			clearing = true
		} else {
			p, err := decodePhoto(req.Photo)
			if err != nil {
				return nil, err
			}
			photo = p
		}
	}

	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil || cur.HomeworkSubmissionStudentID != sess.StudentID {
		return nil, ErrHomeworkNotFound
	}

	fields := map[string]any{"title": req.Title, "content": req.Content}
	oldPhoto := cur.HomeworkSubmissionPhoto
	newPhoto := oldPhoto
	switch {
	case photo != nil:
		ref, err := s.photos.Save(ctx, sess.StudentID.String(), photo)
		if err != nil {
			return nil, err
		}
		newPhoto = &ref
		fields["photo"] = ref
	case clearing:
		newPhoto = nil
		fields["photo"] = nil
	}

	ok, err := s.repo.UpdateOwned(ctx, sess.StudentID, id, fields)
	if err != nil || !ok {
		if photo != nil {
			s.dropPhoto(ctx, newPhoto)
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrHomeworkNotFound
	}
	if photo != nil || clearing {
		s.dropPhoto(ctx, oldPhoto)
	}

	out := *cur
	out.HomeworkSubmissionTitle = req.Title
	out.HomeworkSubmissionContent = req.Content
	out.HomeworkSubmissionPhoto = newPhoto
	return &out, nil
}

// Delete removes exactly the caller's own submission and reports the points it was worth.
func (s *Service) Delete(ctx context.Context, sess helperAuth.StudentSession, id uuid.UUID) (dto.DeleteResult, error) {
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.DeleteResult{}, err
	}
	if cur == nil || cur.HomeworkSubmissionStudentID != sess.StudentID {
		return dto.DeleteResult{}, ErrHomeworkNotFound
	}
	n, err := s.repo.DeleteOwned(ctx, sess.StudentID, id)
	if err != nil {
		return dto.DeleteResult{}, err
	}
	if n != 1 {
		return dto.DeleteResult{}, ErrHomeworkNotFound
	}
	s.dropPhoto(ctx, cur.HomeworkSubmissionPhoto)
	return dto.DeleteResult{
		ID:             cur.HomeworkSubmissionID,
		HomeworkType:   cur.HomeworkSubmissionType,
		PointsDeducted: cur.HomeworkSubmissionPoints,
	}, nil
}

// Stamps lists, per day of the month ("YYYY-MM", empty = current), the homework
// types the student handed in. Days without submissions are omitted.
func (s *Service) Stamps(ctx context.Context, studentID uuid.UUID, month string) (dto.MonthStamps, error) {
	start, end, err := dbtime.MonthRange(month, s.Now())
	if err != nil {
		return dto.MonthStamps{}, helper.NewFieldError("month", err.Error())
	}
	rows, err := s.repo.ListByStudentBetween(ctx, studentID, start, end)
	if err != nil {
		return dto.MonthStamps{}, err
	}
	return dto.MonthStamps{Month: start.Format(dbtime.MonthLayout), Days: BuildStamps(rows)}, nil
}

// BuildStamps groups rows by calendar day (ascending). Types inside a day follow
// the homework type table order.
func BuildStamps(rows []model.HomeworkSubmissionModel) []dto.DayStamp {
	byDay := map[string]map[string]bool{}
	var days []string
	for _, r := range rows {
		day := dbtime.DayKey(r.HomeworkSubmissionSubmittedAt)
		if byDay[day] == nil {
			byDay[day] = map[string]bool{}
			days = append(days, day)
		}
		byDay[day][r.HomeworkSubmissionType] = true
	}
	slices.Sort(days)

	out := make([]dto.DayStamp, 0, len(days))
	for _, d := range days {
		st := dto.DayStamp{Date: d, Types: []string{}}
		for _, ht := range constants.HomeworkTypes {
			if byDay[d][ht.Type] {
				st.Types = append(st.Types, ht.Type)
			}
		}
		out = append(out, st)
	}
	return out
}

/* =======================================================
   TEACHER
   ======================================================= */

// ReviewStudent lists one student's submissions (newest first) with total and
// average points.
func (s *Service) ReviewStudent(ctx context.Context, classroomID, studentID uuid.UUID) (dto.StudentHomeworkReview, error) {
	st, err := s.students.Get(ctx, classroomID, studentID)
	if err != nil {
		return dto.StudentHomeworkReview{}, err
	}
	rows, err := s.repo.ListByStudent(ctx, st.StudentID)
	if err != nil {
		return dto.StudentHomeworkReview{}, err
	}
	total := 0
	for _, r := range rows {
		total += r.HomeworkSubmissionPoints
	}
	return dto.StudentHomeworkReview{
		StudentID:     st.StudentID,
		StudentName:   st.StudentName,
		TotalPoints:   total,
		AveragePoints: AveragePoints(total, len(rows)),
		Count:         len(rows),
		Submissions:   dto.FromModels(rows),
	}, nil
}

// TeacherDelete removes any submission made inside the teacher's classroom.
func (s *Service) TeacherDelete(ctx context.Context, classroomID, id uuid.UUID) (dto.DeleteResult, error) {
	cur, err := s.repo.FindInClassroom(ctx, classroomID, id)
	if err != nil {
		return dto.DeleteResult{}, err
	}
	if cur == nil {
		return dto.DeleteResult{}, ErrHomeworkNotFound
	}
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return dto.DeleteResult{}, err
	}
	if n != 1 {
		return dto.DeleteResult{}, ErrHomeworkNotFound
	}
	s.dropPhoto(ctx, cur.HomeworkSubmissionPhoto)
	log.Printf("[INFO] homework %s of student %s removed by teacher", id, cur.HomeworkSubmissionStudentID)
	return dto.DeleteResult{
		ID:             cur.HomeworkSubmissionID,
		HomeworkType:   cur.HomeworkSubmissionType,
		PointsDeducted: cur.HomeworkSubmissionPoints,
	}, nil
}

// AveragePoints is round(total/count), 0 without submissions.
func AveragePoints(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

func decodePhoto(raw *string) (*ossHelper.Photo, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	p, err := ossHelper.DecodePhoto(*raw)
	if err != nil {
		return nil, helper.NewFieldError("photo", err.Error())
	}
	return p, nil
}

func (s *Service) dropPhoto(ctx context.Context, ref *string) {
	if ref == nil {
		return
	}
	if err := s.photos.Delete(ctx, *ref); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ERROR] delete photo %q: %v", *ref, err)
	}
}
