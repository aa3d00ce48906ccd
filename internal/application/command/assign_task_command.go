package command

type AssignTaskCommand struct {
	TaskId uint `json:"task_id" form:"task_id"`
	UserId uint `json:"user_id" form:"user_id"`
}

type AssignTaskCommandResult struct {
	TaskAssignmentId uint `json:"task_assignment_id"`
}
