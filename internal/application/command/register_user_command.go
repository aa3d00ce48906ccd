package command

import "task-service/internal/application/common"

type RegisterUserCommand struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type RegisterUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
