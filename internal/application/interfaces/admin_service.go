package interfaces

import (
	"context"

	"task-service/internal/application/command"
)

type AdminService interface {
	AssignTask(ctx context.Context, assignCommand *command.AssignTaskCommand) (*command.AssignTaskCommandResult, error)
	UnassignTask(ctx context.Context, unassignCommand *command.UnassignTaskCommand) error
}
