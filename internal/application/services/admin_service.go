package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/errs"
	"task-service/internal/domain/repositories"
)

type AdminService struct {
	taskRepo       repositories.TaskRepository
	userRepo       repositories.UserRepository
	assignmentRepo repositories.AssignmentRepository
	log            *logrus.Logger
}

func NewAdminService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	assignmentRepo repositories.AssignmentRepository,
	log *logrus.Logger,
) interfaces.AdminService {
	return &AdminService{
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		log:            log,
	}
}

// AssignTask does not check for an existing assignment of the same pair;
// duplicates are representable in the store and stay representable here.
func (s *AdminService) AssignTask(ctx context.Context, assignCommand *command.AssignTaskCommand) (*command.AssignTaskCommandResult, error) {
	task, err := s.taskRepo.FindById(ctx, assignCommand.TaskId)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrTaskNotFound
	}

	user, err := s.userRepo.FindById(ctx, assignCommand.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}

	assignment, err := s.assignmentRepo.Create(ctx, entities.NewTaskAssignment(assignCommand.UserId, assignCommand.TaskId))
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"task_id": assignCommand.TaskId,
		"user_id": assignCommand.UserId,
	}).Info("task assigned")

	return &command.AssignTaskCommandResult{TaskAssignmentId: assignment.Id}, nil
}

// UnassignTask removes one matching assignment. When duplicate rows exist
// for the pair, which one is removed is unspecified.
func (s *AdminService) UnassignTask(ctx context.Context, unassignCommand *command.UnassignTaskCommand) error {
	assignment, err := s.assignmentRepo.FindByPair(ctx, unassignCommand.TaskId, unassignCommand.UserId)
	if err != nil {
		return err
	}
	if assignment == nil {
		return errs.ErrAssignmentNotFound
	}

	return s.assignmentRepo.Delete(ctx, assignment.Id)
}
