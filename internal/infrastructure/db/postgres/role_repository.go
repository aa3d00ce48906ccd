package postgres

import (
	"context"

	"gorm.io/gorm"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindOrCreate(ctx context.Context, name string) (*entities.Role, error) {
	var roleModel RoleModel
	err := r.db.WithContext(ctx).Where(RoleModel{Name: name}).FirstOrCreate(&roleModel).Error
	if err != nil {
		return nil, err
	}

	return &entities.Role{Id: roleModel.Id, Name: roleModel.Name}, nil
}

func (r *RoleRepository) Grant(ctx context.Context, userID, roleID uint) error {
	link := UserRoleLinkModel{UserId: userID, RoleId: roleID}
	return r.db.WithContext(ctx).Where(link).FirstOrCreate(&link).Error
}
