package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/errs"
)

type Handler struct {
	authService  interfaces.AuthService
	taskService  interfaces.TaskService
	adminService interfaces.AdminService
	log          *logrus.Logger
}

func NewHandler(
	authService interfaces.AuthService,
	taskService interfaces.TaskService,
	adminService interfaces.AdminService,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		authService:  authService,
		taskService:  taskService,
		adminService: adminService,
		log:          log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return writeError(c, errs.ErrInvalidInput)
	}

	result, err := h.authService.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: result.Token, TokenType: "bearer"})
}

// Login accepts OAuth2 password-style form fields (username, password).
func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return writeError(c, errs.ErrInvalidInput)
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: result.Token, TokenType: "bearer"})
}

// Me reports the caller's identity. Roles come from the token claims, so
// they reflect the role set at issuance, not the store's current state.
func (h *Handler) Me(c echo.Context) error {
	user, ok := c.Get(contextUserKey).(*entities.User)
	if !ok {
		return writeError(c, errs.ErrInvalidToken)
	}

	result := mapper.NewUserResultFromEntity(user)
	if roles, ok := c.Get(contextRolesKey).([]string); ok {
		result.Roles = roles
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var createCommand command.CreateTaskCommand
	if err := c.Bind(&createCommand); err != nil {
		return writeError(c, errs.ErrInvalidInput)
	}

	result, err := h.taskService.CreateTask(c.Request().Context(), &createCommand)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":     "Task created",
		"task_id": result.Result.Id,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	result, err := h.taskService.FindAllTasks(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result.Tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	result, err := h.taskService.FindTaskById(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var updateCommand command.UpdateTaskCommand
	if err := c.Bind(&updateCommand); err != nil {
		return writeError(c, errs.ErrInvalidInput)
	}
	updateCommand.Id = id

	if _, err := h.taskService.UpdateTask(c.Request().Context(), &updateCommand); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Task updated"})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseIdParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Task deleted"})
}

func (h *Handler) AssignTask(c echo.Context) error {
	var assignCommand command.AssignTaskCommand
	if err := c.Bind(&assignCommand); err != nil {
		return writeError(c, errs.ErrInvalidInput)
	}

	result, err := h.adminService.AssignTask(c.Request().Context(), &assignCommand)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":                "Task assigned successfully",
		"task_assignment_id": result.TaskAssignmentId,
	})
}

func (h *Handler) UnassignTask(c echo.Context) error {
	taskID, err := parseIdParam(c, "task_id")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := parseIdParam(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}

	unassignCommand := command.UnassignTaskCommand{TaskId: taskID, UserId: userID}
	if err := h.adminService.UnassignTask(c.Request().Context(), &unassignCommand); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Task unassigned successfully"})
}

func (h *Handler) UserTasks(c echo.Context) error {
	userID, err := parseIdParam(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}

	result, err := h.taskService.FindTasksForUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result.Tasks)
}

func parseIdParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errs.ErrInvalidInput
	}
	return uint(id), nil
}
