package http

import (
	"github.com/labstack/echo/v4"

	"task-service/internal/application/interfaces"
)

// RegisterRoutes wires the HTTP surface. Everything outside /auth sits
// behind the bearer gate; /admin additionally requires the admin role.
func RegisterRoutes(e *echo.Echo, h *Handler, authService interfaces.AuthService) {
	e.POST("/auth/register", h.Register)
	e.POST("/auth/token", h.Login)

	protected := e.Group("", RequireAuth(authService))
	protected.GET("/users/me", h.Me)
	protected.GET("/user/tasks/:user_id", h.UserTasks)

	task := protected.Group("/task")
	task.POST("/", h.CreateTask)
	task.GET("/", h.ListTasks)
	task.GET("/:id", h.GetTask)
	task.PUT("/:id", h.UpdateTask)
	task.DELETE("/:id", h.DeleteTask)

	admin := protected.Group("/admin", RequireRole("admin"))
	admin.POST("/assign-task", h.AssignTask)
	admin.DELETE("/unassign-task/:task_id/:user_id", h.UnassignTask)
}
