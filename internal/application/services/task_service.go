package services

import (
	"context"
	"fmt"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/errs"
	"task-service/internal/domain/repositories"
)

type TaskService struct {
	taskRepo       repositories.TaskRepository
	userRepo       repositories.UserRepository
	assignmentRepo repositories.AssignmentRepository
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	assignmentRepo repositories.AssignmentRepository,
) interfaces.TaskService {
	return &TaskService{
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	newTask := entities.NewTask(createCommand.Title, createCommand.Description)
	validatedTask, err := entities.NewValidatedTask(newTask)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	createdTask, err := s.taskRepo.Create(ctx, validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}, nil
}

func (s *TaskService) FindTaskById(ctx context.Context, id uint) (*query.TaskQueryResult, error) {
	task, err := s.taskRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrTaskNotFound
	}

	return &query.TaskQueryResult{Result: mapper.NewTaskResultFromEntity(task)}, nil
}

func (s *TaskService) FindAllTasks(ctx context.Context) (*query.TaskListQueryResult, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.TaskListQueryResult{Tasks: mapper.NewTaskResultsFromEntities(tasks)}, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	task, err := s.taskRepo.FindById(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrTaskNotFound
	}

	if err := task.UpdateDetails(updateCommand.Title, updateCommand.Description); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}

	updatedTask, err := s.taskRepo.Update(ctx, validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.UpdateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(updatedTask),
	}, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) FindTasksForUser(ctx context.Context, userID uint) (*query.TaskListQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}

	tasks, err := s.assignmentRepo.TasksForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &query.TaskListQueryResult{Tasks: mapper.NewTaskResultsFromEntities(tasks)}, nil
}
