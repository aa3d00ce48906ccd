package query

import "task-service/internal/application/common"

type TaskQueryResult struct {
	Result *common.TaskResult `json:"result"`
}

type TaskListQueryResult struct {
	Tasks []*common.TaskResult `json:"tasks"`
}
