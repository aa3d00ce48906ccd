package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

type RoleRepository interface {
	// FindOrCreate returns the role with the given name, creating it if absent.
	FindOrCreate(ctx context.Context, name string) (*entities.Role, error)
	// Grant links a role to a user. Granting an already-held role is a no-op.
	Grant(ctx context.Context, userID, roleID uint) error
}
