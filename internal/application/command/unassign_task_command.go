package command

type UnassignTaskCommand struct {
	TaskId uint `json:"task_id"`
	UserId uint `json:"user_id"`
}
