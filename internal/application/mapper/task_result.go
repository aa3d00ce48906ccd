package mapper

import (
	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
)

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	return &common.TaskResult{
		Id:          task.Id,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Title:       task.Title,
		Description: task.Description,
	}
}

func NewTaskResultsFromEntities(tasks []*entities.Task) []*common.TaskResult {
	results := make([]*common.TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, NewTaskResultFromEntity(task))
	}
	return results
}
