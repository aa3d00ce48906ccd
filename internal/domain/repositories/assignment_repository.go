package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entities.TaskAssignment) (*entities.TaskAssignment, error)
	// FindByPair returns one assignment for the pair, (nil, nil) when none
	// exists. Which row is returned is unspecified when duplicates exist.
	FindByPair(ctx context.Context, taskID, userID uint) (*entities.TaskAssignment, error)
	Delete(ctx context.Context, id uint) error
	// TasksForUser lists the tasks reachable through the user's assignments.
	TasksForUser(ctx context.Context, userID uint) ([]*entities.Task, error)
}
