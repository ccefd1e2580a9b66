package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_backend/internals/features/homeworks/submissions/model"
	"homework_backend/internals/features/homeworks/submissions/service"
	studentModel "homework_backend/internals/features/users/students/model"
	helper "homework_backend/internals/helpers"
	helperAuth "homework_backend/internals/helpers/auth"
)

// memRepository keeps just enough state for the submit endpoint.
type memRepository struct {
	mu    sync.Mutex
	rows  []model.HomeworkSubmissionModel
	calls int
}

func (r *memRepository) RunInStudentLock(_ context.Context, _ uuid.UUID, fn func(tx service.Repository) error) error {
	r.calls++
	return fn(r)
}

func (r *memRepository) CountForDay(_ context.Context, studentID uuid.UUID, homeworkType string, start, end time.Time) (int64, error) {
	r.calls++
	var n int64
	for _, row := range r.rows {
		at := row.HomeworkSubmissionSubmittedAt
		if row.HomeworkSubmissionStudentID == studentID && row.HomeworkSubmissionType == homeworkType && !at.Before(start) && at.Before(end) {
			n++
		}
	}
	return n, nil
}

func (r *memRepository) Create(_ context.Context, m *model.HomeworkSubmissionModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	m.HomeworkSubmissionID = uuid.New()
	r.rows = append(r.rows, *m)
	return nil
}

func (r *memRepository) FindByID(context.Context, uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	return nil, nil
}

func (r *memRepository) FindInClassroom(context.Context, uuid.UUID, uuid.UUID) (*model.HomeworkSubmissionModel, error) {
	return nil, nil
}

func (r *memRepository) ListByStudent(context.Context, uuid.UUID) ([]model.HomeworkSubmissionModel, error) {
	return r.rows, nil
}

func (r *memRepository) ListByStudentBetween(context.Context, uuid.UUID, time.Time, time.Time) ([]model.HomeworkSubmissionModel, error) {
	return r.rows, nil
}

func (r *memRepository) UpdateOwned(context.Context, uuid.UUID, uuid.UUID, map[string]any) (bool, error) {
	return false, nil
}

func (r *memRepository) DeleteOwned(context.Context, uuid.UUID, uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *memRepository) DeleteByID(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type noStudents struct{}

func (noStudents) Get(context.Context, uuid.UUID, uuid.UUID) (*studentModel.StudentModel, error) {
	return nil, fiber.ErrNotFound
}

func newSubmitApp(repo *memRepository) *fiber.App {
	svc := service.NewService(repo, noStudents{}, nil)
	svc.Now = func() time.Time { return time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC) }
	ctl := NewHomeworkSubmissionController(svc)

	sess := helperAuth.StudentSession{StudentID: uuid.New(), Name: "Mia", ClassroomID: uuid.New()}
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Post("/api/s/homeworks", func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocRole, "student")
		c.Locals(helperAuth.LocStudentSession, sess)
		return c.Next()
	}, ctl.Submit)
	return app
}

func postHomework(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/s/homeworks", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSubmitBlankTitleReturns422(t *testing.T) {
	repo := &memRepository{}
	app := newSubmitApp(repo)

	status, body := postHomework(t, app, `{"homework_type":"diary","title":"   ","content":"went to the beach"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "title")
	assert.Zero(t, repo.calls)
}

func TestSubmitUnknownTypeReturns422(t *testing.T) {
	repo := &memRepository{}
	status, body := postHomework(t, newSubmitApp(repo), `{"homework_type":"essay","title":"t","content":"c"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["errors"], "homework_type")
	assert.Zero(t, repo.calls)
}

func TestSubmitTwiceSameDayReturns409(t *testing.T) {
	repo := &memRepository{}
	app := newSubmitApp(repo)
	payload := `{"homework_type":"diary","title":"Day one","content":"went to the beach"}`

	status, body := postHomework(t, app, payload)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 10, data["points"])

	status, body = postHomework(t, app, payload)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])
	assert.Equal(t, "Diary can only be submitted once per day", body["message"])
	assert.Len(t, repo.rows, 1)
}
