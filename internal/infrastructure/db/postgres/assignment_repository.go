package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/errs"
	"task-service/internal/domain/repositories"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) repositories.AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *entities.TaskAssignment) (*entities.TaskAssignment, error) {
	assignmentModel := TaskAssignmentModel{
		UserId: assignment.UserId,
		TaskId: assignment.TaskId,
		Status: assignment.Status,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&assignmentModel).Error
	})
	if err != nil {
		return nil, err
	}

	return r.mapToEntity(&assignmentModel), nil
}

func (r *AssignmentRepository) FindByPair(ctx context.Context, taskID, userID uint) (*entities.TaskAssignment, error) {
	var assignmentModel TaskAssignmentModel
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&assignmentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&assignmentModel), nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&TaskAssignmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrAssignmentNotFound
	}
	return nil
}

func (r *AssignmentRepository) TasksForUser(ctx context.Context, userID uint) ([]*entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.WithContext(ctx).
		Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
		Where("task_assignments.user_id = ?", userID).
		Order("tasks.id").
		Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, &entities.Task{
			Id:          taskModels[i].Id,
			CreatedAt:   taskModels[i].CreatedAt,
			UpdatedAt:   taskModels[i].UpdatedAt,
			Title:       taskModels[i].Title,
			Description: taskModels[i].Description,
		})
	}
	return tasks, nil
}

func (r *AssignmentRepository) mapToEntity(assignmentModel *TaskAssignmentModel) *entities.TaskAssignment {
	return &entities.TaskAssignment{
		Id:     assignmentModel.Id,
		UserId: assignmentModel.UserId,
		TaskId: assignmentModel.TaskId,
		Status: assignmentModel.Status,
	}
}
