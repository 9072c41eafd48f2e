package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
	"padhobadho/internal/handler"
	"padhobadho/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	subjectULID  = "01HQ3K4Z7X8Y9ZABCDEFGHJKMN"
	sessionULID  = "01HQ3K4Z7X8Y9ZABCDEFGHJKMP"
	questionULID = "01HQ3K4Z7X8Y9ZABCDEFGHJKMQ"
)

// --- Manual Mocks ---

type MockPracticeService struct {
	StartPracticeFunc func(ctx context.Context, userID, subjectID string) (*dto.StartPracticeResponse, error)
}

func (m *MockPracticeService) StartPractice(ctx context.Context, userID, subjectID string) (*dto.StartPracticeResponse, error) {
	if m.StartPracticeFunc != nil {
		return m.StartPracticeFunc(ctx, userID, subjectID)
	}
	panic("MockPracticeService.StartPracticeFunc not implemented")
}

type MockProgressService struct {
	RecordAnswerFunc func(ctx context.Context, submission domain.AnswerSubmission) (*dto.SubmitAnswerResponse, error)
	GetProgressFunc  func(ctx context.Context, userID string) (*dto.ProgressResponse, error)
}

func (m *MockProgressService) RecordAnswer(ctx context.Context, submission domain.AnswerSubmission) (*dto.SubmitAnswerResponse, error) {
	if m.RecordAnswerFunc != nil {
		return m.RecordAnswerFunc(ctx, submission)
	}
	panic("MockProgressService.RecordAnswerFunc not implemented")
}

func (m *MockProgressService) GetProgress(ctx context.Context, userID string) (*dto.ProgressResponse, error) {
	if m.GetProgressFunc != nil {
		return m.GetProgressFunc(ctx, userID)
	}
	panic("MockProgressService.GetProgressFunc not implemented")
}

type MockMockTestService struct {
	StartMockTestFunc func(ctx context.Context, userID, subjectID string) (*dto.StartMockTestResponse, error)
}

func (m *MockMockTestService) StartMockTest(ctx context.Context, userID, subjectID string) (*dto.StartMockTestResponse, error) {
	if m.StartMockTestFunc != nil {
		return m.StartMockTestFunc(ctx, userID, subjectID)
	}
	panic("MockMockTestService.StartMockTestFunc not implemented")
}

type MockScoringService struct {
	GradeAndRecordFunc func(ctx context.Context, userID string, submission domain.MockSubmission) (*dto.MockTestResultResponse, error)
}

func (m *MockScoringService) GradeAndRecord(ctx context.Context, userID string, submission domain.MockSubmission) (*dto.MockTestResultResponse, error) {
	if m.GradeAndRecordFunc != nil {
		return m.GradeAndRecordFunc(ctx, userID, submission)
	}
	panic("MockScoringService.GradeAndRecordFunc not implemented")
}

type MockQuestionAdminService struct {
	DeleteQuestionFunc func(ctx context.Context, questionID string) error
}

func (m *MockQuestionAdminService) DeleteQuestion(ctx context.Context, questionID string) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, questionID)
	}
	panic("MockQuestionAdminService.DeleteQuestionFunc not implemented")
}

// --- Helpers ---

// fakeAuth stands in for middleware.Protected.
func fakeAuth(userID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		c.Locals(middleware.RoleKey, role)
		return c.Next()
	}
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, r io.Reader, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(v))
}

func intPtr(v int) *int { return &v }

// --- Practice ---

func TestPracticeHandler_StartPractice(t *testing.T) {
	practiceSvc := &MockPracticeService{
		StartPracticeFunc: func(ctx context.Context, userID, subjectID string) (*dto.StartPracticeResponse, error) {
			assert.Equal(t, "u1", userID)
			assert.Equal(t, subjectULID, subjectID)
			return &dto.StartPracticeResponse{
				SessionID: sessionULID,
				SubjectID: subjectID,
				Questions: []dto.QuestionView{{ID: questionULID, Content: "2+2?", Options: []string{"3", "4"}}},
			}, nil
		},
	}
	h := handler.NewPracticeHandler(practiceSvc, &MockProgressService{})
	app := newTestApp()
	app.Post("/api/practice/sessions", fakeAuth("u1", dto.RoleStudent), h.StartPractice)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/practice/sessions", dto.StartPracticeRequest{SubjectID: subjectULID}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var raw map[string]interface{}
	decode(t, resp.Body, &raw)
	assert.Equal(t, sessionULID, raw["session_id"])
	questions := raw["questions"].([]interface{})
	require.Len(t, questions, 1)
	assert.NotContains(t, questions[0].(map[string]interface{}), "correct_option")
}

func TestPracticeHandler_StartPractice_NoQuestions(t *testing.T) {
	practiceSvc := &MockPracticeService{
		StartPracticeFunc: func(ctx context.Context, userID, subjectID string) (*dto.StartPracticeResponse, error) {
			return nil, domain.NewNoQuestionsAvailableError(subjectID)
		},
	}
	h := handler.NewPracticeHandler(practiceSvc, &MockProgressService{})
	app := newTestApp()
	app.Post("/api/practice/sessions", fakeAuth("u1", dto.RoleStudent), h.StartPractice)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/practice/sessions", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var errResp middleware.ErrorResponse
	decode(t, resp.Body, &errResp)
	assert.Equal(t, "NO_QUESTIONS_AVAILABLE", errResp.Code)
}

func TestPracticeHandler_SubmitAnswer(t *testing.T) {
	progressSvc := &MockProgressService{
		RecordAnswerFunc: func(ctx context.Context, s domain.AnswerSubmission) (*dto.SubmitAnswerResponse, error) {
			assert.Equal(t, "u1", s.UserID)
			assert.Equal(t, sessionULID, s.SessionID)
			assert.Equal(t, questionULID, s.QuestionID)
			assert.Equal(t, 0, s.ChosenOption)
			require.NotNil(t, s.TimeSpentSeconds)
			assert.Equal(t, 30, *s.TimeSpentSeconds)
			return &dto.SubmitAnswerResponse{IsCorrect: false, CorrectOption: 1, XPAwarded: 10, XP: 10, Level: 1, CurrentStreak: 1, LongestStreak: 1}, nil
		},
	}
	h := handler.NewPracticeHandler(&MockPracticeService{}, progressSvc)
	app := newTestApp()
	app.Post("/api/practice/answers", fakeAuth("u1", dto.RoleStudent), h.SubmitAnswer)

	body := dto.SubmitAnswerRequest{SessionID: sessionULID, QuestionID: questionULID, ChosenOption: intPtr(0), TimeSpentSeconds: intPtr(30)}
	resp, err := app.Test(jsonRequest(t, "POST", "/api/practice/answers", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.SubmitAnswerResponse
	decode(t, resp.Body, &out)
	assert.Equal(t, 1, out.CorrectOption)
	assert.Equal(t, 10, out.XPAwarded)
}

func TestPracticeHandler_SubmitAnswer_Validation(t *testing.T) {
	h := handler.NewPracticeHandler(&MockPracticeService{}, &MockProgressService{})
	app := newTestApp()
	app.Post("/api/practice/answers", fakeAuth("u1", dto.RoleStudent), h.SubmitAnswer)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/practice/answers", dto.SubmitAnswerRequest{SessionID: sessionULID}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out middleware.ValidationErrorResponse
	decode(t, resp.Body, &out)
	assert.Equal(t, "VALIDATION_ERROR", out.Code)
	assert.Len(t, out.Errors, 2)
}

func TestPracticeHandler_SubmitAnswer_QuestionGone(t *testing.T) {
	progressSvc := &MockProgressService{
		RecordAnswerFunc: func(ctx context.Context, s domain.AnswerSubmission) (*dto.SubmitAnswerResponse, error) {
			return nil, domain.NewQuestionNotFoundError(s.QuestionID)
		},
	}
	h := handler.NewPracticeHandler(&MockPracticeService{}, progressSvc)
	app := newTestApp()
	app.Post("/api/practice/answers", fakeAuth("u1", dto.RoleStudent), h.SubmitAnswer)

	body := dto.SubmitAnswerRequest{SessionID: sessionULID, QuestionID: questionULID, ChosenOption: intPtr(2)}
	resp, err := app.Test(jsonRequest(t, "POST", "/api/practice/answers", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// --- Mock tests ---

func TestMockTestHandler_Submit(t *testing.T) {
	scoring := &MockScoringService{
		GradeAndRecordFunc: func(ctx context.Context, userID string, s domain.MockSubmission) (*dto.MockTestResultResponse, error) {
			assert.Equal(t, "u1", userID)
			assert.Equal(t, subjectULID, s.SubjectID)
			assert.Equal(t, 2000, s.SecondsRemaining)
			assert.Equal(t, map[string]int{questionULID: 1}, s.Answers)
			return &dto.MockTestResultResponse{SessionID: sessionULID, Score: -1, Incorrect: 1, Unattempted: 29, TimeSpentSeconds: 700}, nil
		},
	}
	h := handler.NewMockTestHandler(&MockMockTestService{}, scoring)
	app := newTestApp()
	app.Post("/api/mock-tests/submit", fakeAuth("u1", dto.RoleStudent), h.SubmitMockTest)

	body := dto.SubmitMockTestRequest{
		SubjectID:        subjectULID,
		Answers:          map[string]int{questionULID: 1},
		SecondsRemaining: intPtr(2000),
		TotalQuestions:   30,
	}
	resp, err := app.Test(jsonRequest(t, "POST", "/api/mock-tests/submit", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.MockTestResultResponse
	decode(t, resp.Body, &out)
	assert.Equal(t, -1, out.Score, "negative scores are returned as-is")
	assert.Equal(t, 29, out.Unattempted)
}

func TestMockTestHandler_Start(t *testing.T) {
	svc := &MockMockTestService{
		StartMockTestFunc: func(ctx context.Context, userID, subjectID string) (*dto.StartMockTestResponse, error) {
			return &dto.StartMockTestResponse{SubjectID: subjectID, TimeLimitSeconds: domain.MockTestDurationSeconds}, nil
		},
	}
	h := handler.NewMockTestHandler(svc, &MockScoringService{})
	app := newTestApp()
	app.Post("/api/mock-tests", fakeAuth("u1", dto.RoleStudent), h.StartMockTest)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/mock-tests", dto.StartMockTestRequest{}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/mock-tests", dto.StartMockTestRequest{SubjectID: subjectULID}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.StartMockTestResponse
	decode(t, resp.Body, &out)
	assert.Equal(t, 2700, out.TimeLimitSeconds)
}

// --- Progress ---

func TestProgressHandler_GetMyProgress(t *testing.T) {
	svc := &MockProgressService{
		GetProgressFunc: func(ctx context.Context, userID string) (*dto.ProgressResponse, error) {
			assert.Equal(t, "u1", userID)
			return &dto.ProgressResponse{UserID: userID, XP: 1020, Level: 2}, nil
		},
	}
	h := handler.NewProgressHandler(svc)
	app := newTestApp()
	app.Get("/api/users/me/progress", fakeAuth("u1", dto.RoleStudent), h.GetMyProgress)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/me/progress", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ProgressResponse
	decode(t, resp.Body, &out)
	assert.Equal(t, 2, out.Level)
}

// --- Admin ---

func TestAdminHandler_DeleteQuestion(t *testing.T) {
	var deleted string
	svc := &MockQuestionAdminService{
		DeleteQuestionFunc: func(ctx context.Context, questionID string) error {
			deleted = questionID
			return nil
		},
	}
	h := handler.NewAdminHandler(svc)
	vm := middleware.NewValidationMiddleware()
	app := newTestApp()
	app.Delete("/api/admin/questions/:id", fakeAuth("admin1", dto.RoleAdmin), middleware.RequireAdmin(), vm.ValidateIDParam("id"), h.DeleteQuestion)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/questions/"+questionULID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, questionULID, deleted)
}

func TestAdminHandler_DeleteQuestion_Forbidden(t *testing.T) {
	h := handler.NewAdminHandler(&MockQuestionAdminService{})
	app := newTestApp()
	app.Delete("/api/admin/questions/:id", fakeAuth("u1", dto.RoleStudent), middleware.RequireAdmin(), h.DeleteQuestion)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/questions/"+questionULID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminHandler_DeleteQuestion_NotFound(t *testing.T) {
	svc := &MockQuestionAdminService{
		DeleteQuestionFunc: func(ctx context.Context, questionID string) error {
			return domain.NewQuestionNotFoundError(questionID)
		},
	}
	h := handler.NewAdminHandler(svc)
	app := newTestApp()
	app.Delete("/api/admin/questions/:id", fakeAuth("admin1", dto.RoleAdmin), h.DeleteQuestion)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/admin/questions/"+questionULID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// --- Health ---

func TestHealthHandler(t *testing.T) {
	ok := handler.PingFunc(func(ctx context.Context) error { return nil })
	down := handler.PingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	app := newTestApp()
	app.Get("/health", handler.NewHealthHandler(map[string]handler.Pinger{"database": ok, "redis": nil}).Health)
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	app = newTestApp()
	app.Get("/health", handler.NewHealthHandler(map[string]handler.Pinger{"database": ok, "redis": down}).Health)
	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	var body map[string]string
	decode(t, resp.Body, &body)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "connection refused", body["redis"])
}
