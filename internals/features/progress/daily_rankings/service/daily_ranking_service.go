package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	"homework_backend/internals/features/progress/daily_rankings/dto"
	"homework_backend/internals/features/progress/daily_rankings/model"
	pointsDTO "homework_backend/internals/features/progress/points/dto"
	helper "homework_backend/internals/helpers"
	"homework_backend/internals/helpers/dbtime"
)

type Classrooms interface {
	ListAll(ctx context.Context) ([]classroomModel.ClassroomModel, error)
}

type Rankings interface {
	Ranking(ctx context.Context, classroomID uuid.UUID) ([]pointsDTO.RankingEntry, error)
}

type Service struct {
	repo       Repository
	classrooms Classrooms
	rankings   Rankings
	Now        func() time.Time
}

func NewService(repo Repository, classrooms Classrooms, rankings Rankings) *Service {
	return &Service{repo: repo, classrooms: classrooms, rankings: rankings, Now: time.Now}
}

// SnapshotClassroom stores the current ranking of one classroom under the given day.
// Running it twice for the same day overwrites the earlier positions.
func (s *Service) SnapshotClassroom(ctx context.Context, classroomID uuid.UUID, day time.Time) (int, error) {
	entries, err := s.rankings.Ranking(ctx, classroomID)
	if err != nil {
		return 0, err
	}
	start, _ := dbtime.DayRange(day)
	rows := make([]model.DailyRankingModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.DailyRankingModel{
			DailyRankingClassroomID: classroomID,
			DailyRankingStudentID:   e.StudentID,
			DailyRankingDate:        datatypes.Date(start),
			DailyRankingPosition:    e.Rank,
			DailyRankingScore:       e.TotalPoints,
		})
	}
	if err := s.repo.Upsert(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// SnapshotAll snapshots every classroom for today. A failing classroom is logged
// and skipped; the first error is returned after the loop.
func (s *Service) SnapshotAll(ctx context.Context) (dto.SnapshotResult, error) {
	now := s.Now()
	out := dto.SnapshotResult{Date: dbtime.DayKey(now)}

	classrooms, err := s.classrooms.ListAll(ctx)
	if err != nil {
		return out, err
	}
	var firstErr error
	for _, cls := range classrooms {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		n, err := s.SnapshotClassroom(ctx, cls.ClassroomID, now)
		if err != nil {
			log.Printf("[CRON] ranking snapshot classroom=%s failed: %v", cls.ClassroomID, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("snapshot classroom %s: %w", cls.ClassroomID, err)
			}
			continue
		}
		out.Classrooms++
		out.Rows += n
	}
	return out, firstErr
}

// Snapshot is the teacher-triggered variant for a single classroom; date may be empty (today).
func (s *Service) Snapshot(ctx context.Context, classroomID uuid.UUID, date string) (dto.SnapshotResult, error) {
	day, err := dbtime.ParseDay(date, s.Now())
	if err != nil {
		return dto.SnapshotResult{}, helper.NewFieldError("date", err.Error())
	}
	n, err := s.SnapshotClassroom(ctx, classroomID, day)
	if err != nil {
		return dto.SnapshotResult{}, err
	}
	return dto.SnapshotResult{Date: dbtime.DayKey(day), Classrooms: 1, Rows: n}, nil
}

func (s *Service) ListDay(ctx context.Context, classroomID uuid.UUID, date string) ([]dto.DailyRankingResponse, error) {
	day, err := dbtime.ParseDay(date, s.Now())
	if err != nil {
		return nil, helper.NewFieldError("date", err.Error())
	}
	rows, err := s.repo.ListDay(ctx, classroomID, day)
	if err != nil {
		return nil, err
	}
	return dto.FromRows(rows), nil
}
