package command

import "task-service/internal/application/common"

type CreateTaskCommand struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
