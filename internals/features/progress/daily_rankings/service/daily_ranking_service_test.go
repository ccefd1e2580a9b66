package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classroomModel "homework_backend/internals/features/classrooms/classrooms/model"
	"homework_backend/internals/features/progress/daily_rankings/dto"
	"homework_backend/internals/features/progress/daily_rankings/model"
	pointsDTO "homework_backend/internals/features/progress/points/dto"
	helper "homework_backend/internals/helpers"
)

type rankingKey struct {
	classroom uuid.UUID
	student   uuid.UUID
	day       string
}

type inmemRepository struct {
	mu   sync.Mutex
	rows map[rankingKey]model.DailyRankingModel
}

func newInmemRepository() *inmemRepository {
	return &inmemRepository{rows: map[rankingKey]model.DailyRankingModel{}}
}

func (r *inmemRepository) Upsert(_ context.Context, rows []model.DailyRankingModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		k := rankingKey{row.DailyRankingClassroomID, row.DailyRankingStudentID, time.Time(row.DailyRankingDate).Format("2006-01-02")}
		r.rows[k] = row
	}
	return nil
}

func (r *inmemRepository) ListDay(_ context.Context, classroomID uuid.UUID, day time.Time) ([]dto.DailyRankingRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dto.DailyRankingRow
	for k, row := range r.rows {
		if k.classroom == classroomID && k.day == day.Format("2006-01-02") {
			out = append(out, dto.DailyRankingRow{
				StudentID:    row.DailyRankingStudentID,
				RankPosition: row.DailyRankingPosition,
				Score:        row.DailyRankingScore,
				RankingDate:  time.Time(row.DailyRankingDate),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RankPosition < out[j].RankPosition })
	return out, nil
}

type fakeClassrooms []classroomModel.ClassroomModel

func (f fakeClassrooms) ListAll(context.Context) ([]classroomModel.ClassroomModel, error) {
	return f, nil
}

type fakeRankings struct {
	byClassroom map[uuid.UUID][]pointsDTO.RankingEntry
	fail        map[uuid.UUID]bool
}

func (f *fakeRankings) Ranking(_ context.Context, cid uuid.UUID) ([]pointsDTO.RankingEntry, error) {
	if f.fail[cid] {
		return nil, errors.New("boom")
	}
	return f.byClassroom[cid], nil
}

func fixedNow() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

func entries(points ...int) []pointsDTO.RankingEntry {
	out := make([]pointsDTO.RankingEntry, 0, len(points))
	for i, p := range points {
		out = append(out, pointsDTO.RankingEntry{Rank: i + 1, StudentID: uuid.New(), TotalPoints: p})
	}
	return out
}

func TestSnapshotClassroomUpsertsOneRowPerStudent(t *testing.T) {
	cid := uuid.New()
	ranking := &fakeRankings{byClassroom: map[uuid.UUID][]pointsDTO.RankingEntry{cid: entries(30, 15, 0)}}
	repo := newInmemRepository()
	svc := NewService(repo, fakeClassrooms{}, ranking)
	svc.Now = fixedNow

	n, err := svc.SnapshotClassroom(context.Background(), cid, fixedNow())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// a second run the same day overwrites instead of duplicating
	ranking.byClassroom[cid][0].TotalPoints = 45
	_, err = svc.SnapshotClassroom(context.Background(), cid, fixedNow().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, repo.rows, 3)

	got, err := svc.ListDay(context.Background(), cid, "2026-03-14")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 45, got[0].Score)
	assert.Equal(t, "2026-03-14", got[0].Date)
}

func TestSnapshotAllSkipsFailingClassroom(t *testing.T) {
	ok1, bad, ok2 := uuid.New(), uuid.New(), uuid.New()
	ranking := &fakeRankings{
		byClassroom: map[uuid.UUID][]pointsDTO.RankingEntry{ok1: entries(10, 5), ok2: entries(1)},
		fail:        map[uuid.UUID]bool{bad: true},
	}
	repo := newInmemRepository()
	svc := NewService(repo, fakeClassrooms{{ClassroomID: ok1}, {ClassroomID: bad}, {ClassroomID: ok2}}, ranking)
	svc.Now = fixedNow

	res, err := svc.SnapshotAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, "2026-03-14", res.Date)
	assert.Equal(t, 2, res.Classrooms)
	assert.Equal(t, 3, res.Rows)
}

func TestListDayRejectsBadDate(t *testing.T) {
	svc := NewService(newInmemRepository(), fakeClassrooms{}, &fakeRankings{})
	_, err := svc.ListDay(context.Background(), uuid.New(), "14/03/2026")

	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "date")
}

func TestSnapshotDefaultsToToday(t *testing.T) {
	cid := uuid.New()
	svc := NewService(newInmemRepository(), fakeClassrooms{}, &fakeRankings{byClassroom: map[uuid.UUID][]pointsDTO.RankingEntry{cid: entries(3)}})
	svc.Now = fixedNow

	res, err := svc.Snapshot(context.Background(), cid, "")
	require.NoError(t, err)
	assert.Equal(t, dto.SnapshotResult{Date: "2026-03-14", Classrooms: 1, Rows: 1}, res)
}
