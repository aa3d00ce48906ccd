package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	FindById(ctx context.Context, id uint) (*entities.Task, error)
	FindAll(ctx context.Context) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	Delete(ctx context.Context, id uint) error
}
