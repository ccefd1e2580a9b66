package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"

	"homework_backend/internals/constants"
	submissionDTO "homework_backend/internals/features/homeworks/submissions/dto"
	submissionModel "homework_backend/internals/features/homeworks/submissions/model"
	submissionService "homework_backend/internals/features/homeworks/submissions/service"
	"homework_backend/internals/features/progress/points/dto"
	studentModel "homework_backend/internals/features/users/students/model"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, studentID uuid.UUID) (dto.PointsSummary, error) {
	rows, err := s.repo.ListStudentSubmissions(ctx, studentID)
	if err != nil {
		return dto.PointsSummary{}, err
	}
	return Summarize(rows), nil
}

func (s *Service) Ranking(ctx context.Context, classroomID uuid.UUID) ([]dto.RankingEntry, error) {
	students, err := s.repo.ListStudents(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListClassroomSubmissions(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	return BuildRanking(students, rows), nil
}

// Board is the ranking as seen by one student of the classroom.
func (s *Service) Board(ctx context.Context, classroomID, studentID uuid.UUID) (dto.RankingBoard, error) {
	entries, err := s.Ranking(ctx, classroomID)
	if err != nil {
		return dto.RankingBoard{}, err
	}
	out := dto.RankingBoard{Entries: entries}
	for i := range entries {
		if entries[i].StudentID == studentID {
			me := entries[i]
			out.MyRank = &me
			break
		}
	}
	return out, nil
}

// RankingWithSubmissions is the teacher's ranking management view.
func (s *Service) RankingWithSubmissions(ctx context.Context, classroomID uuid.UUID) ([]dto.RankingManagementEntry, error) {
	students, err := s.repo.ListStudents(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListClassroomSubmissions(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[uuid.UUID][]submissionModel.HomeworkSubmissionModel, len(students))
	for _, r := range rows {
		byStudent[r.HomeworkSubmissionStudentID] = append(byStudent[r.HomeworkSubmissionStudentID], r)
	}

	ranking := BuildRanking(students, rows)
	out := make([]dto.RankingManagementEntry, 0, len(ranking))
	for _, e := range ranking {
		subs := byStudent[e.StudentID]
		out = append(out, dto.RankingManagementEntry{
			RankingEntry:  e,
			AveragePoints: submissionService.AveragePoints(e.TotalPoints, e.SubmissionCount),
			Submissions:   submissionDTO.FromModels(subs),
		})
	}
	return out, nil
}

// BuildRanking totals points per student and sorts by total, highest first. Ties
// keep the input (creation) order; rank is position + 1.
func BuildRanking(students []studentModel.StudentModel, rows []submissionModel.HomeworkSubmissionModel) []dto.RankingEntry {
	entries := make([]dto.RankingEntry, 0, len(students))
	index := make(map[uuid.UUID]int, len(students))
	for _, st := range students {
		index[st.StudentID] = len(entries)
		entries = append(entries, dto.RankingEntry{StudentID: st.StudentID, StudentName: st.StudentName})
	}
	for _, r := range rows {
		i, ok := index[r.HomeworkSubmissionStudentID]
		if !ok {
			continue
		}
		entries[i].TotalPoints += r.HomeworkSubmissionPoints
		entries[i].SubmissionCount++
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Summarize counts submissions per type and computes the goal progress.
func Summarize(rows []submissionModel.HomeworkSubmissionModel) dto.PointsSummary {
	counts := map[string]int{}
	points := map[string]int{}
	out := dto.PointsSummary{Types: make([]dto.TypeProgress, 0, len(constants.HomeworkTypes))}
	for _, r := range rows {
		counts[r.HomeworkSubmissionType]++
		points[r.HomeworkSubmissionType] += r.HomeworkSubmissionPoints
		out.TotalPoints += r.HomeworkSubmissionPoints
		out.TotalCount++
	}
	for _, ht := range constants.HomeworkTypes {
		n := counts[ht.Type]
		out.Types = append(out.Types, dto.TypeProgress{
			Type:        ht.Type,
			Label:       ht.Label,
			PointsEach:  ht.Points,
			Count:       n,
			TotalPoints: points[ht.Type],
			Goal:        ht.MinRequired,
			Progress:    GoalProgress(n, ht.MinRequired),
		})
	}
	return out
}

// GoalProgress is min(count/goal, 1) * 100. A zero goal counts as met once
// anything was submitted.
func GoalProgress(count, goal int) int {
	if goal <= 0 {
		if count > 0 {
			return 100
		}
		return 0
	}
	p := math.Min(float64(count)/float64(goal), 1) * 100
	return int(math.Round(p))
}
