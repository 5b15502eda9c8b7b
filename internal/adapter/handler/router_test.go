package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/errors"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/handler"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	httpmw "github.com/johnquangdev/one-on-one-manager/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/metrics"
	"github.com/johnquangdev/one-on-one-manager/internal/testutil"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analytics"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/auth"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/calendar"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/meetings"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/notes"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/people"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/tasks"
	"github.com/johnquangdev/one-on-one-manager/pkg/ai"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
	"github.com/johnquangdev/one-on-one-manager/pkg/jwt"
)

type server struct {
	e  *echo.Echo
	db *gorm.DB
}

func newServer(t *testing.T) *server {
	t.Helper()
	return newServerWithProviders(t, &ai.Providers{})
}

func newServerWithProviders(t *testing.T, providers *ai.Providers) *server {
	t.Helper()

	db := testutil.NewDB(t)
	logger := zap.NewNop()
	m := metrics.NewMetrics()
	cfg := &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"*"}},
	}

	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	jwtManager := jwt.NewManager("access", "refresh", time.Hour, 24*time.Hour)
	noteAnalyzer := analyzer.NewAnalyzer(providers, config.AIConfig{}, m, logger)
	assigned := attribution.NewService(userRepo, personRepo, taskRepo, logger)

	handlers := handler.Handlers{
		Auth:      handler.NewAuth(auth.NewAuthService(userRepo, jwtManager).WithHashCost(bcrypt.MinCost), logger),
		Person:    handler.NewPersonHandler(people.NewPeopleService(personRepo), logger),
		Meeting:   handler.NewMeetingHandler(meetings.NewMeetingService(meetingRepo, personRepo, noteAnalyzer), logger),
		Task:      handler.NewTaskHandler(tasks.NewTaskService(taskRepo, personRepo, meetingRepo, assigned), logger),
		Calendar:  handler.NewCalendarHandler(calendar.NewCalendarService(repository.NewCalendarRepository(db), noteAnalyzer, nil, logger), logger),
		Note:      handler.NewNoteHandler(notes.NewNoteService(repository.NewNoteRepository(db), personRepo), logger),
		Analytics: handler.NewAnalyticsHandler(analytics.NewAnalyticsService(repository.NewAnalyticsRepository(db), personRepo, meetingRepo, noteAnalyzer), logger),
	}

	e := echo.New()
	handler.NewRouter(
		cfg,
		handlers,
		httpmw.EchoAuth(jwtManager),
		httpmw.UnitOfWork(db, logger),
		[]echo.MiddlewareFunc{httpmw.RequestLogger(logger), httpmw.Metrics(m)},
		logger,
	).Setup(e)

	return &server{e: e, db: db}
}

func (s *server) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its access token
func (s *server) register(t *testing.T, username string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"username": username,
		"password": "secret-" + username,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[map[string]interface{}](t, rec)["access_token"].(string)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorCode {
	t.Helper()
	body := decode[map[string]interface{}](t, rec)
	code, ok := body["code"].(float64)
	require.True(t, ok, rec.Body.String())
	return errors.ErrorCode(code)
}

func id(t *testing.T, rec *httptest.ResponseRecorder) uint {
	t.Helper()
	return uint(decode[map[string]interface{}](t, rec)["id"].(float64))
}

func TestServiceEndpoints(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]string](t, rec)["status"])

	rec = s.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[map[string]string](t, rec)
	assert.Equal(t, "One-on-One Manager API", info["message"])
	assert.Equal(t, "1.0.0", info["version"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "oneonone_http_requests_total")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/api/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errors.ErrorCode_UNAUTHENTICATED, errorCode(t, rec))

	rec = s.do(t, http.MethodGet, "/api/employees", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsers_RegisterLoginRefresh(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "dana")

	rec := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{"username": "DANA", "password": "x"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"username": "dana", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"username": "dana", "password": "secret-dana"})
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "bearer", login["token_type"])

	rec = s.do(t, http.MethodPost, "/api/users/refresh", "", map[string]string{"refresh_token": login["refresh_token"].(string)})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/users/refresh", "", map[string]string{"refresh_token": token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dana", decode[map[string]interface{}](t, rec)["username"])

	rec = s.do(t, http.MethodGet, "/api/users/check/dana", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]interface{}](t, rec)["exists"])

	rec = s.do(t, http.MethodGet, "/api/users/check/nobody", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, rec)["exists"])
}

func TestPeople_OwnershipAndSoftDelete(t *testing.T) {
	s := newServer(t)
	owner := s.register(t, "owner")
	other := s.register(t, "other")

	rec := s.do(t, http.MethodPost, "/api/employees", owner, map[string]interface{}{
		"name": "Noa Levi",
		"role": "Engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	personID := id(t, rec)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", personID), other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrorCode_NOT_FOUND, errorCode(t, rec))

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/employees/%d", personID), owner, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/employees", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = s.do(t, http.MethodGet, "/api/employees?active_only=false", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", personID), owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, rec)["is_active"])

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/employees/%d?hard_delete=true", personID), owner, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", personID), owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPeople_Validation(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/employees", token, map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/employees", token, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrorCode_INVALID_PAYLOAD, errorCode(t, rec))

	rec = s.do(t, http.MethodGet, "/api/employees/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeetings_CreateWithChildren(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/employees", token, map[string]string{"name": "Noa"})
	require.Equal(t, http.StatusCreated, rec.Code)
	personID := id(t, rec)

	rec = s.do(t, http.MethodPost, "/api/meetings", token, map[string]interface{}{
		"employee_id": personID,
		"date":        "2026-03-02T10:00:00",
		"notes":       "- need to update the roadmap",
		"action_items": []map[string]string{
			{"description": "Send feedback"},
		},
		"topics": []map[string]string{
			{"name": "Career"},
			{"name": "Workload"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	meeting := decode[map[string]interface{}](t, rec)
	meetingID := uint(meeting["id"].(float64))
	assert.Equal(t, "Noa", meeting["employee_name"])
	assert.Len(t, meeting["action_items"], 1)
	assert.Len(t, meeting["topics"], 2)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", personID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode[map[string]interface{}](t, rec)["meeting_count"])

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/api/meetings/%d/extract-tasks", meetingID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	suggested := decode[map[string][]map[string]interface{}](t, rec)["suggested_tasks"]
	require.Len(t, suggested, 1)
	assert.EqualValues(t, personID, suggested[0]["person_id"])

	rec = s.do(t, http.MethodPost, "/api/meetings", token, map[string]interface{}{
		"employee_id": 999,
		"date":        "2026-03-02",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/meetings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)
}

func TestMeetings_FailedCreateRollsBack(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/employees", token, map[string]string{"name": "Noa"})
	require.Equal(t, http.StatusCreated, rec.Code)
	personID := id(t, rec)

	rec = s.do(t, http.MethodPost, "/api/meetings", token, map[string]interface{}{
		"employee_id":  personID,
		"date":         "2026-03-02",
		"action_items": []map[string]string{{"description": "ok"}, {"description": ""}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, s.db.Table("meetings").Count(&count).Error)
	assert.Zero(t, count)
}

func TestTasks_BulkIsAtomic(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/tasks/bulk", token, []map[string]string{
		{"title": "one"},
		{"title": "two", "priority": "high"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 2)

	rec = s.do(t, http.MethodPost, "/api/tasks/bulk", token, []map[string]interface{}{
		{"title": "three"},
		{"title": "four", "person_id": 999},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/tasks/bulk", token, []map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 2, list["total"])
	assert.EqualValues(t, 2, list["pending"])
}

func TestTasks_CompleteStampsOnce(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/tasks", token, map[string]string{"title": "write review"})
	require.Equal(t, http.StatusCreated, rec.Code)
	taskID := id(t, rec)

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", taskID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "completed", done["status"])
	require.NotNil(t, done["completed_at"])

	rec = s.do(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskID), token, map[string]string{"status": "pending"})
	require.Equal(t, http.StatusOK, rec.Code)
	reopened := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "pending", reopened["status"])
	assert.Equal(t, done["completed_at"], reopened["completed_at"])

	rec = s.do(t, http.MethodGet, "/api/tasks/my", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTasks_AssignedToMe(t *testing.T) {
	s := newServer(t)
	manager := s.register(t, "manager")

	rec := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"username":     "dlevi",
		"password":     "pw",
		"display_name": "Dana Levi",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	dana := decode[map[string]interface{}](t, rec)["access_token"].(string)

	rec = s.do(t, http.MethodPost, "/api/employees", manager, map[string]string{"name": "Dana Levi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	personID := id(t, rec)

	rec = s.do(t, http.MethodPost, "/api/tasks", manager, map[string]interface{}{
		"title":     "prepare demo",
		"task_type": "discuss_with",
		"person_id": personID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/tasks/assigned-to-me", dana, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assigned := decode[[]map[string]interface{}](t, rec)
	require.Len(t, assigned, 1)
	assert.Equal(t, "prepare demo", assigned[0]["title"])
	assert.Equal(t, "manager", assigned[0]["assigned_by"])
}

func TestCalendar_DayAndPrepNotes(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodGet, "/api/calendar?target_date=03/02/2026", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/calendar", token, map[string]string{
		"title":      "Sync",
		"start_time": "2026-03-02T11:00:00",
		"end_time":   "2026-03-02T10:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/calendar", token, map[string]string{
		"title":       "Sync",
		"start_time":  "2026-03-02T10:00:00",
		"end_time":    "2026-03-02T10:30:00",
		"external_id": "evt-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	meetingID := id(t, rec)

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/api/calendar/%d/notes", meetingID), token, map[string]string{"content": "bring numbers"})
	require.Equal(t, http.StatusCreated, rec.Code)
	noteID := id(t, rec)

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/api/calendar/%d/notes/%d/toggle", meetingID, noteID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]interface{}](t, rec)["is_completed"])

	rec = s.do(t, http.MethodGet, "/api/calendar?target_date=2026-03-02", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 1, day["total"])
	assert.Equal(t, "2026-03-02", day["date"])

	rec = s.do(t, http.MethodPost, "/api/calendar/import", token, map[string]interface{}{
		"meetings": []map[string]string{
			{"title": "Sync (moved)", "start_time": "2026-03-02T12:00:00", "end_time": "2026-03-02T12:30:00", "external_id": "evt-1"},
			{"title": "Planning", "start_time": "2026-03-03T09:00:00", "end_time": "2026-03-03T10:00:00", "external_id": "evt-2"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	imported := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 1, imported["created"])
	assert.EqualValues(t, 1, imported["updated"])

	rec = s.do(t, http.MethodGet, "/api/calendar/week?start_date=2026-03-02", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 2)

	rec = s.do(t, http.MethodPost, "/api/calendar/extract-from-screenshot", token, map[string]string{"image": "aGVsbG8="})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode[map[string]interface{}](t, rec)["total"])

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/calendar/%d", meetingID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNotes_PinnedFirst(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/notes", token, map[string]string{"title": "wifi", "content": "guest / guest", "category": "credential"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := id(t, rec)

	rec = s.do(t, http.MethodPost, "/api/notes", token, map[string]string{"title": "docs", "content": "https://example.com", "category": "link"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/api/notes/%d/toggle-pin", first), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]interface{}](t, rec)["is_pinned"])

	rec = s.do(t, http.MethodGet, "/api/notes", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 2, list["total"])
	assert.Equal(t, "wifi", list["notes"].([]interface{})[0].(map[string]interface{})["title"])

	rec = s.do(t, http.MethodGet, "/api/notes?category=recipe", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/notes", token, map[string]interface{}{"title": "t", "content": "c", "person_id": 42})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalytics_AnalyzeWithoutProvider(t *testing.T) {
	s := newServer(t)
	token := s.register(t, "owner")

	rec := s.do(t, http.MethodPost, "/api/employees", token, map[string]string{"name": "Noa"})
	require.Equal(t, http.StatusCreated, rec.Code)
	personID := id(t, rec)

	rec = s.do(t, http.MethodPost, "/api/meetings", token, map[string]interface{}{
		"employee_id": personID,
		"date":        time.Now().UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	meetingID := id(t, rec)

	rec = s.do(t, http.MethodPost, "/api/analytics/analyze", token, map[string]interface{}{
		"meeting_id": meetingID,
		"notes":      "Talked about career growth and a possible promotion",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	analysis := decode[map[string]interface{}](t, rec)
	assert.Contains(t, analysis["topics"], "career")
	assert.NotEmpty(t, analysis["sentiment"])

	rec = s.do(t, http.MethodGet, "/api/analytics/overview", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	overview := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 1, overview["total_meetings"])

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/analytics/employee/%d", personID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/analytics/topics/trends?months=30", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/analytics/action-items/pending", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))
}

// blockingModel holds every call until release is closed
type blockingModel struct {
	started chan struct{}
	release chan struct{}
}

func (m *blockingModel) GenerateContent(ctx context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.started <- struct{}{}
	select {
	case <-m.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	reply := `{"insights":"steady","topics":["project"],"sentiment":"neutral","action_items_suggested":[]}`
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: reply}}}, nil
}

func TestAnalytics_AnalyzeDoesNotBlockOtherRequests(t *testing.T) {
	model := &blockingModel{started: make(chan struct{}, 1), release: make(chan struct{})}
	s := newServerWithProviders(t, &ai.Providers{OpenAI: ai.NewProvider(ai.ProviderOpenAI, model, false)})
	alice := s.register(t, "alice")
	bob := s.register(t, "bob")

	rec := s.do(t, http.MethodPost, "/api/employees", alice, map[string]string{"name": "Noa"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/meetings", alice, map[string]interface{}{
		"employee_id": id(t, rec),
		"date":        time.Now().UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	meetingID := id(t, rec)

	analyzed := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		analyzed <- s.do(t, http.MethodPost, "/api/analytics/analyze", alice, map[string]interface{}{
			"meeting_id": meetingID,
			"notes":      "Project is on track",
		})
	}()

	select {
	case <-model.started:
	case <-time.After(5 * time.Second):
		t.Fatal("analyze never reached the model")
	}

	listed := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		listed <- s.do(t, http.MethodGet, "/api/employees", bob, nil)
	}()

	select {
	case rec := <-listed:
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	case <-time.After(5 * time.Second):
		t.Fatal("listing waited on the pending model call")
	}

	close(model.release)
	rec = <-analyzed
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "neutral", decode[map[string]interface{}](t, rec)["sentiment"])

	var stored entities.Meeting
	require.NoError(t, s.db.First(&stored, meetingID).Error)
	require.NotNil(t, stored.AISentiment)
	assert.Equal(t, "neutral", *stored.AISentiment)
	assert.Equal(t, []string{"project"}, stored.TopicList())
}
