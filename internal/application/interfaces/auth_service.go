package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/domain/entities"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	// Authenticate resolves a bearer token to the persisted user plus the
	// role claims embedded in the token (point-in-time, not re-queried).
	Authenticate(ctx context.Context, token string) (*entities.User, []string, error)
	// EnsureAdminUser idempotently creates the bootstrap admin account and
	// grants it the admin role. No-op when either credential is empty.
	EnsureAdminUser(ctx context.Context, username, password string) error
}
