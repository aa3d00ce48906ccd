package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

type TaskService interface {
	CreateTask(ctx context.Context, createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	FindTaskById(ctx context.Context, id uint) (*query.TaskQueryResult, error)
	FindAllTasks(ctx context.Context) (*query.TaskListQueryResult, error)
	UpdateTask(ctx context.Context, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteTask(ctx context.Context, id uint) error
	FindTasksForUser(ctx context.Context, userID uint) (*query.TaskListQueryResult, error)
}
