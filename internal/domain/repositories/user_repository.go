package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

// Finders return (nil, nil) when no row matches; callers decide whether
// absence is an error.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
