package command

import "task-service/internal/application/common"

type UpdateTaskCommand struct {
	Id          uint   `json:"-"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
