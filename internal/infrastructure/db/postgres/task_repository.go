package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/errs"
	"task-service/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskEntity := task.GetTask()

	taskModel := TaskModel{
		CreatedAt:   taskEntity.CreatedAt,
		UpdatedAt:   taskEntity.UpdatedAt,
		Title:       taskEntity.Title,
		Description: taskEntity.Description,
	}

	if err := r.db.WithContext(ctx).Create(&taskModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) FindById(ctx context.Context, id uint) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]*entities.Task, error) {
	var taskModels []TaskModel
	if err := r.db.WithContext(ctx).Order("id").Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, r.mapToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	taskEntity := task.GetTask()

	taskModel := TaskModel{
		Id:          taskEntity.Id,
		CreatedAt:   taskEntity.CreatedAt,
		UpdatedAt:   taskEntity.UpdatedAt,
		Title:       taskEntity.Title,
		Description: taskEntity.Description,
	}

	if err := r.db.WithContext(ctx).Save(&taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, taskEntity.Id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		Id:          taskModel.Id,
		CreatedAt:   taskModel.CreatedAt,
		UpdatedAt:   taskModel.UpdatedAt,
		Title:       taskModel.Title,
		Description: taskModel.Description,
	}
}
