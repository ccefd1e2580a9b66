package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_backend/internals/configs"
	"homework_backend/internals/constants"
	"homework_backend/internals/features/homeworks/submissions/dto"
	studentModel "homework_backend/internals/features/users/students/model"
	studentService "homework_backend/internals/features/users/students/service"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

type fakeStudents map[uuid.UUID]studentModel.StudentModel

func (f fakeStudents) Get(_ context.Context, classroomID, id uuid.UUID) (*studentModel.StudentModel, error) {
	if st, ok := f[id]; ok && st.StudentClassroomID == classroomID {
		return &st, nil
	}
	return nil, studentService.ErrStudentNotFound
}

type fixture struct {
	svc     *Service
	repo    *inmemRepository
	sess    helperAuth.StudentSession
	clock   time.Time
	classID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	configs.AppLocation = time.UTC
	f := &fixture{
		repo:    newInmemRepository(),
		classID: uuid.New(),
		clock:   time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC),
	}
	f.sess = helperAuth.StudentSession{StudentID: uuid.New(), Name: "Mia", ClassroomID: f.classID}
	f.repo.owner[f.sess.StudentID] = f.classID
	students := fakeStudents{f.sess.StudentID: {StudentID: f.sess.StudentID, StudentName: "Mia", StudentClassroomID: f.classID}}
	f.svc = NewService(f.repo, students, nil)
	f.svc.Now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) submit(t *testing.T, hwType string) dto.HomeworkSubmissionResponse {
	t.Helper()
	row, err := f.svc.Submit(context.Background(), f.sess, dto.SubmitHomeworkRequest{
		HomeworkType: hwType, Title: "My day", Content: "It was sunny.",
	})
	require.NoError(t, err)
	return dto.FromModel(*row)
}

func TestSubmitRejectsEmptyFieldsWithoutRepositoryCall(t *testing.T) {
	f := newFixture(t)

	cases := []dto.SubmitHomeworkRequest{
		{HomeworkType: "diary", Title: "", Content: "text"},
		{HomeworkType: "diary", Title: "   ", Content: "text"},
		{HomeworkType: "diary", Title: "title", Content: "\n\t "},
		{HomeworkType: "poem", Title: "title", Content: "text"},
		{HomeworkType: "", Title: "title", Content: "text"},
		{HomeworkType: "diary", Title: "title", Content: "text", Photo: strPtr("data:image/png;base64,!!!")},
	}
	for _, req := range cases {
		_, err := f.svc.Submit(context.Background(), f.sess, req)
		var ve *helper.ValidationError
		assert.ErrorAs(t, err, &ve, "%+v", req)
	}
	assert.Zero(t, f.repo.calls)
}

func TestSubmitAssignsPointsFromTypeTable(t *testing.T) {
	f := newFixture(t)
	for _, ht := range constants.HomeworkTypes {
		out := f.submit(t, ht.Type)
		assert.Equal(t, ht.Points, out.Points)
		assert.Equal(t, ht.Label, out.TypeLabel)
		assert.Equal(t, f.clock, out.SubmittedAt)
	}
}

func TestSubmitOncePerTypePerDay(t *testing.T) {
	f := newFixture(t)
	f.submit(t, constants.HomeworkDiary)

	_, err := f.svc.Submit(context.Background(), f.sess, dto.SubmitHomeworkRequest{
		HomeworkType: constants.HomeworkDiary, Title: "again", Content: "again",
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Equal(t, "Diary can only be submitted once per day", fe.Message)

	// another type the same day is fine
	f.submit(t, constants.HomeworkBookReport)

	// the next day the diary is accepted again
	f.clock = f.clock.Add(24 * time.Hour)
	f.submit(t, constants.HomeworkDiary)
	assert.Len(t, f.repo.rows, 3)
}

func TestSubmitConcurrentSameTypeKeepsOneRow(t *testing.T) {
	f := newFixture(t)

	var ok atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Submit(context.Background(), f.sess, dto.SubmitHomeworkRequest{
				HomeworkType: constants.HomeworkFreeTask, Title: "t", Content: "c",
			})
			if err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, ok.Load())
	assert.Len(t, f.repo.rows, 1)
}

func TestSubmitWithPhoto(t *testing.T) {
	f := newFixture(t)
	photo := pngDataURL(t)

	row, err := f.svc.Submit(context.Background(), f.sess, dto.SubmitHomeworkRequest{
		HomeworkType: constants.HomeworkDiary, Title: "t", Content: "c", Photo: &photo,
	})
	require.NoError(t, err)
	require.NotNil(t, row.HomeworkSubmissionPhoto)
	assert.Equal(t, photo, *row.HomeworkSubmissionPhoto)
}

func TestTodayStatus(t *testing.T) {
	f := newFixture(t)
	f.submit(t, constants.HomeworkBookReport)

	out, err := f.svc.Today(context.Background(), f.sess.StudentID)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-15", out.Date)
	assert.Equal(t, map[string]bool{"diary": false, "book-report": true, "free-task": false}, out.Submitted)
}

func TestDeleteRemovesExactlyOneRow(t *testing.T) {
	f := newFixture(t)
	a := f.submit(t, constants.HomeworkDiary)
	f.submit(t, constants.HomeworkBookReport)
	f.clock = f.clock.Add(24 * time.Hour)
	f.submit(t, constants.HomeworkDiary)

	res, err := f.svc.Delete(context.Background(), f.sess, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, res.PointsDeducted)
	assert.Len(t, f.repo.rows, 2)
	_, still := f.repo.rows[a.ID]
	assert.False(t, still)

	_, err = f.svc.Delete(context.Background(), f.sess, a.ID)
	assert.ErrorIs(t, err, ErrHomeworkNotFound)
}

func TestStudentCannotTouchOthersHomework(t *testing.T) {
	f := newFixture(t)
	a := f.submit(t, constants.HomeworkDiary)
	other := helperAuth.StudentSession{StudentID: uuid.New(), ClassroomID: f.classID}

	_, err := f.svc.Delete(context.Background(), other, a.ID)
	assert.ErrorIs(t, err, ErrHomeworkNotFound)
	_, err = f.svc.Update(context.Background(), other, a.ID, dto.UpdateHomeworkRequest{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrHomeworkNotFound)
	assert.Len(t, f.repo.rows, 1)
}

func TestUpdateKeepsTypeAndPoints(t *testing.T) {
	f := newFixture(t)
	a := f.submit(t, constants.HomeworkBookReport)

	_, err := f.svc.Update(context.Background(), f.sess, a.ID, dto.UpdateHomeworkRequest{Title: " ", Content: "y"})
	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)

	out, err := f.svc.Update(context.Background(), f.sess, a.ID, dto.UpdateHomeworkRequest{Title: " New ", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, "New", out.HomeworkSubmissionTitle)
	assert.Equal(t, constants.HomeworkBookReport, out.HomeworkSubmissionType)
	assert.Equal(t, 15, out.HomeworkSubmissionPoints)
	assert.Equal(t, "New", f.repo.rows[a.ID].HomeworkSubmissionTitle)

	empty := ""
	photo := pngDataURL(t)
	_, err = f.svc.Update(context.Background(), f.sess, a.ID, dto.UpdateHomeworkRequest{Title: "a", Content: "b", Photo: &photo})
	require.NoError(t, err)
	require.NotNil(t, f.repo.rows[a.ID].HomeworkSubmissionPhoto)
	_, err = f.svc.Update(context.Background(), f.sess, a.ID, dto.UpdateHomeworkRequest{Title: "a", Content: "b", Photo: &empty})
	require.NoError(t, err)
	assert.Nil(t, f.repo.rows[a.ID].HomeworkSubmissionPhoto)
}

func TestReviewStudentTotals(t *testing.T) {
	f := newFixture(t)
	f.submit(t, constants.HomeworkDiary)      // 10
	f.submit(t, constants.HomeworkBookReport) // 15
	f.clock = f.clock.Add(time.Hour)
	f.submit(t, constants.HomeworkFreeTask) // 5

	out, err := f.svc.ReviewStudent(context.Background(), f.classID, f.sess.StudentID)
	require.NoError(t, err)
	assert.Equal(t, 30, out.TotalPoints)
	assert.Equal(t, 10, out.AveragePoints)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, constants.HomeworkFreeTask, out.Submissions[0].HomeworkType)

	_, err = f.svc.ReviewStudent(context.Background(), uuid.New(), f.sess.StudentID)
	assert.ErrorIs(t, err, studentService.ErrStudentNotFound)
}

func TestTeacherDeleteScopedToClassroom(t *testing.T) {
	f := newFixture(t)
	a := f.submit(t, constants.HomeworkDiary)

	_, err := f.svc.TeacherDelete(context.Background(), uuid.New(), a.ID)
	assert.ErrorIs(t, err, ErrHomeworkNotFound)

	res, err := f.svc.TeacherDelete(context.Background(), f.classID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, res.PointsDeducted)
	assert.Empty(t, f.repo.rows)
}

func TestStamps(t *testing.T) {
	f := newFixture(t)
	f.clock = time.Date(2024, 7, 2, 8, 0, 0, 0, time.UTC)
	f.submit(t, constants.HomeworkFreeTask)
	f.submit(t, constants.HomeworkDiary)
	f.clock = time.Date(2024, 7, 20, 8, 0, 0, 0, time.UTC)
	f.submit(t, constants.HomeworkBookReport)
	f.clock = time.Date(2024, 8, 1, 8, 0, 0, 0, time.UTC)
	f.submit(t, constants.HomeworkDiary)

	out, err := f.svc.Stamps(context.Background(), f.sess.StudentID, "2024-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-07", out.Month)
	assert.Equal(t, []dto.DayStamp{
		{Date: "2024-07-02", Types: []string{"diary", "free-task"}},
		{Date: "2024-07-20", Types: []string{"book-report"}},
	}, out.Days)

	_, err = f.svc.Stamps(context.Background(), f.sess.StudentID, "July")
	var ve *helper.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAveragePoints(t *testing.T) {
	assert.Equal(t, 0, AveragePoints(0, 0))
	assert.Equal(t, 13, AveragePoints(25, 2))
	assert.Equal(t, 8, AveragePoints(15, 2))
	assert.Equal(t, 10, AveragePoints(30, 3))
}

func strPtr(s string) *string { return &s }

func pngDataURL(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
