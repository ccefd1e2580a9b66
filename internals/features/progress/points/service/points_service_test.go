package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_backend/internals/constants"
	submissionModel "homework_backend/internals/features/homeworks/submissions/model"
	studentModel "homework_backend/internals/features/users/students/model"
)

type inmemRepository struct {
	students []studentModel.StudentModel
	rows     []submissionModel.HomeworkSubmissionModel
}

func (r *inmemRepository) ListStudents(_ context.Context, cid uuid.UUID) ([]studentModel.StudentModel, error) {
	var out []studentModel.StudentModel
	for _, s := range r.students {
		if s.StudentClassroomID == cid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *inmemRepository) ListClassroomSubmissions(ctx context.Context, cid uuid.UUID) ([]submissionModel.HomeworkSubmissionModel, error) {
	students, _ := r.ListStudents(ctx, cid)
	in := map[uuid.UUID]bool{}
	for _, s := range students {
		in[s.StudentID] = true
	}
	var out []submissionModel.HomeworkSubmissionModel
	for _, row := range r.rows {
		if in[row.HomeworkSubmissionStudentID] {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *inmemRepository) ListStudentSubmissions(_ context.Context, sid uuid.UUID) ([]submissionModel.HomeworkSubmissionModel, error) {
	var out []submissionModel.HomeworkSubmissionModel
	for _, row := range r.rows {
		if row.HomeworkSubmissionStudentID == sid {
			out = append(out, row)
		}
	}
	return out, nil
}

func student(cid uuid.UUID, name string) studentModel.StudentModel {
	return studentModel.StudentModel{StudentID: uuid.New(), StudentName: name, StudentClassroomID: cid}
}

func hw(st studentModel.StudentModel, hwType string) submissionModel.HomeworkSubmissionModel {
	info, _ := constants.LookupHomeworkType(hwType)
	return submissionModel.HomeworkSubmissionModel{
		HomeworkSubmissionID:          uuid.New(),
		HomeworkSubmissionStudentID:   st.StudentID,
		HomeworkSubmissionType:        hwType,
		HomeworkSubmissionPoints:      info.Points,
		HomeworkSubmissionSubmittedAt: time.Now(),
	}
}

func TestBuildRankingOrderAndTies(t *testing.T) {
	cid := uuid.New()
	ana, ben, cai, dan := student(cid, "Ana"), student(cid, "Ben"), student(cid, "Cai"), student(cid, "Dan")
	rows := []submissionModel.HomeworkSubmissionModel{
		hw(ben, "diary"), hw(ben, "book-report"), // 25
		hw(cai, "diary"), hw(cai, "free-task"), // 15
		hw(dan, "book-report"), // 15
	}

	got := BuildRanking([]studentModel.StudentModel{ana, ben, cai, dan}, rows)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"Ben", "Cai", "Dan", "Ana"}, []string{got[0].StudentName, got[1].StudentName, got[2].StudentName, got[3].StudentName})
	assert.Equal(t, []int{1, 2, 3, 4}, []int{got[0].Rank, got[1].Rank, got[2].Rank, got[3].Rank})
	assert.Equal(t, 25, got[0].TotalPoints)
	assert.Equal(t, 2, got[0].SubmissionCount)
	assert.Equal(t, 0, got[3].TotalPoints)
}

func TestBuildRankingNonIncreasing(t *testing.T) {
	cid := uuid.New()
	var students []studentModel.StudentModel
	var rows []submissionModel.HomeworkSubmissionModel
	for i := range 30 {
		st := student(cid, string(rune('A'+i%26)))
		students = append(students, st)
		for range rand.IntN(6) {
			rows = append(rows, hw(st, constants.HomeworkTypes[rand.IntN(len(constants.HomeworkTypes))].Type))
		}
	}
	got := BuildRanking(students, rows)
	require.Len(t, got, len(students))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TotalPoints, got[i].TotalPoints)
		assert.Equal(t, i+1, got[i].Rank)
	}
}

func TestSummarize(t *testing.T) {
	st := student(uuid.New(), "Ana")
	rows := []submissionModel.HomeworkSubmissionModel{
		hw(st, "diary"), hw(st, "diary"), hw(st, "diary"), hw(st, "diary"),
		hw(st, "book-report"),
	}
	sum := Summarize(rows)
	assert.Equal(t, 55, sum.TotalPoints)
	assert.Equal(t, 5, sum.TotalCount)
	require.Len(t, sum.Types, 3)

	assert.Equal(t, "diary", sum.Types[0].Type)
	assert.Equal(t, 4, sum.Types[0].Count)
	assert.Equal(t, 100, sum.Types[0].Progress)
	assert.Equal(t, 40, sum.Types[0].TotalPoints)

	assert.Equal(t, 1, sum.Types[1].Count)
	assert.Equal(t, 33, sum.Types[1].Progress)

	assert.Equal(t, 0, sum.Types[2].Count)
	assert.Equal(t, 0, sum.Types[2].Progress)
}

func TestGoalProgress(t *testing.T) {
	assert.Equal(t, 0, GoalProgress(0, 3))
	assert.Equal(t, 67, GoalProgress(2, 3))
	assert.Equal(t, 100, GoalProgress(9, 3))
	assert.Equal(t, 0, GoalProgress(0, 0))
	assert.Equal(t, 100, GoalProgress(1, 0))
}

func TestBoardAndManagement(t *testing.T) {
	cid := uuid.New()
	ana, ben := student(cid, "Ana"), student(cid, "Ben")
	outsider := student(uuid.New(), "Zed")
	repo := &inmemRepository{
		students: []studentModel.StudentModel{ana, ben, outsider},
		rows:     []submissionModel.HomeworkSubmissionModel{hw(ben, "diary"), hw(ben, "free-task"), hw(outsider, "book-report")},
	}
	svc := NewService(repo)

	board, err := svc.Board(context.Background(), cid, ana.StudentID)
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	require.NotNil(t, board.MyRank)
	assert.Equal(t, 2, board.MyRank.Rank)

	mgmt, err := svc.RankingWithSubmissions(context.Background(), cid)
	require.NoError(t, err)
	require.Len(t, mgmt, 2)
	assert.Equal(t, "Ben", mgmt[0].StudentName)
	assert.Equal(t, 8, mgmt[0].AveragePoints)
	assert.Len(t, mgmt[0].Submissions, 2)
	assert.Equal(t, 0, mgmt[1].AveragePoints)
	assert.Empty(t, mgmt[1].Submissions)
}
