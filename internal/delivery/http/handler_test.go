package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-service/internal/application/interfaces"
	"task-service/internal/application/services"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/db/postgres"
)

type testServer struct {
	echo *echo.Echo
	auth interfaces.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, postgres.AutoMigrate(db))

	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)

	jwtService := infrastructure.NewJWTService("test-secret", 30*time.Minute)
	rateLimiter := infrastructure.NewRateLimiter(600, 100)

	authService := services.NewAuthService(userRepo, roleRepo, jwtService, rateLimiter, bcrypt.MinCost, log)
	taskService := services.NewTaskService(taskRepo, userRepo, assignmentRepo)
	adminService := services.NewAdminService(taskRepo, userRepo, assignmentRepo, log)

	e := echo.New()
	RegisterRoutes(e, NewHandler(authService, taskService, adminService, log), authService)

	return &testServer{echo: e, auth: authService}
}

func (ts *testServer) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken)
	require.Equal(t, "bearer", body.TokenType)
	return body.AccessToken
}

func TestRegisterLoginAssignScenario(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.auth.EnsureAdminUser(context.Background(), "boss", "adminpw"))

	// Register alice.
	rec := ts.doJSON(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	aliceToken := decodeToken(t, rec)

	// Re-registering the same username conflicts.
	rec = ts.doJSON(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username_taken")

	// Wrong password fails.
	rec = ts.login("alice", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct login succeeds.
	rec = ts.login("alice", "pw123")
	require.Equal(t, http.StatusOK, rec.Code)
	aliceToken = decodeToken(t, rec)

	// Alice's id via /users/me.
	rec = ts.doJSON(http.MethodGet, "/users/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Id    uint   `json:"id"`
		Name  string `json:"username"`
		Roles []string
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Name)

	// Create a task.
	rec = ts.doJSON(http.MethodPost, "/task/", aliceToken, map[string]string{
		"title": "Buy milk", "description": "2 liters",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		TaskId uint `json:"task_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.TaskId)

	// Alice is not an admin.
	rec = ts.doJSON(http.MethodPost, "/admin/assign-task", aliceToken, map[string]uint{
		"task_id": created.TaskId, "user_id": me.Id,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The seeded admin assigns the task to alice.
	rec = ts.login("boss", "adminpw")
	require.Equal(t, http.StatusOK, rec.Code)
	bossToken := decodeToken(t, rec)

	rec = ts.doJSON(http.MethodPost, "/admin/assign-task", bossToken, map[string]uint{
		"task_id": created.TaskId, "user_id": me.Id,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "task_assignment_id")

	// Alice's task list now contains the task.
	rec = ts.doJSON(http.MethodGet, fmt.Sprintf("/user/tasks/%d", me.Id), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buy milk")

	// Unassign empties it again.
	rec = ts.doJSON(http.MethodDelete, fmt.Sprintf("/admin/unassign-task/%d/%d", created.TaskId, me.Id), bossToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.doJSON(http.MethodGet, fmt.Sprintf("/user/tasks/%d", me.Id), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Buy milk")

	// A second unassign has nothing to remove.
	rec = ts.doJSON(http.MethodDelete, fmt.Sprintf("/admin/unassign-task/%d/%d", created.TaskId, me.Id), bossToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "assignment_not_found")
}

func TestLoginEnumerationResistance(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	unknownUser := ts.login("nobody", "pw123")
	wrongPassword := ts.login("alice", "wrong")

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	// Identical body for both failure modes.
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
}

func TestTaskCRUDEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeToken(t, rec)

	// Validation failure on create.
	rec = ts.doJSON(http.MethodPost, "/task/", token, map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")

	rec = ts.doJSON(http.MethodPost, "/task/", token, map[string]string{"title": "Buy milk"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		TaskId uint `json:"task_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = ts.doJSON(http.MethodGet, fmt.Sprintf("/task/%d", created.TaskId), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buy milk")

	rec = ts.doJSON(http.MethodGet, "/task/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buy milk")

	rec = ts.doJSON(http.MethodPut, fmt.Sprintf("/task/%d", created.TaskId), token, map[string]string{
		"title": "Buy bread", "description": "whole grain",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.doJSON(http.MethodPut, "/task/9999", token, map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "task_not_found")

	rec = ts.doJSON(http.MethodDelete, fmt.Sprintf("/task/%d", created.TaskId), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.doJSON(http.MethodDelete, fmt.Sprintf("/task/%d", created.TaskId), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBearerGate(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec := ts.doJSON(http.MethodGet, "/task/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "could_not_validate_credentials")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := ts.doJSON(http.MethodGet, "/task/", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a different secret", func(t *testing.T) {
		foreign := infrastructure.NewJWTService("other-secret", 30*time.Minute)
		token, err := foreign.Issue("alice", nil)
		require.NoError(t, err)

		rec := ts.doJSON(http.MethodGet, "/task/", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("subject deleted after issuance", func(t *testing.T) {
		// Valid signature but the user never existed in the store.
		orphan := infrastructure.NewJWTService("test-secret", 30*time.Minute)
		token, err := orphan.Issue("ghost", nil)
		require.NoError(t, err)

		rec := ts.doJSON(http.MethodGet, "/task/", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAssignTaskNotFoundReasons(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.auth.EnsureAdminUser(context.Background(), "boss", "adminpw"))

	rec := ts.login("boss", "adminpw")
	require.Equal(t, http.StatusOK, rec.Code)
	bossToken := decodeToken(t, rec)

	rec = ts.doJSON(http.MethodGet, "/users/me", bossToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Id uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))

	// Missing task is reported as the task, not the user.
	rec = ts.doJSON(http.MethodPost, "/admin/assign-task", bossToken, map[string]uint{
		"task_id": 9999, "user_id": me.Id,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "task_not_found")

	rec = ts.doJSON(http.MethodPost, "/task/", bossToken, map[string]string{"title": "Buy milk"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		TaskId uint `json:"task_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = ts.doJSON(http.MethodPost, "/admin/assign-task", bossToken, map[string]uint{
		"task_id": created.TaskId, "user_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_not_found")
}

func TestUserTasksUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeToken(t, rec)

	rec = ts.doJSON(http.MethodGet, "/user/tasks/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_not_found")
}
