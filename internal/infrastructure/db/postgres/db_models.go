package postgres

import "time"

type UserModel struct {
	Id           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string      `gorm:"uniqueIndex;not null"`
	PasswordHash string      `gorm:"not null"`
	Roles        []RoleModel `gorm:"many2many:user_role_links;joinForeignKey:user_id;joinReferences:role_id"`
}

func (UserModel) TableName() string {
	return "users"
}

type RoleModel struct {
	Id   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

type UserRoleLinkModel struct {
	UserId uint `gorm:"primaryKey;column:user_id"`
	RoleId uint `gorm:"primaryKey;column:role_id"`
}

func (UserRoleLinkModel) TableName() string {
	return "user_role_links"
}

type TaskModel struct {
	Id          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// No unique index on (user_id, task_id): duplicate assignments for the same
// pair are representable, matching the documented storage schema.
type TaskAssignmentModel struct {
	Id     uint   `gorm:"primaryKey"`
	UserId uint   `gorm:"column:user_id;not null;index"`
	TaskId uint   `gorm:"column:task_id;not null;index"`
	Status string `gorm:"not null;default:pending"`
}

func (TaskAssignmentModel) TableName() string {
	return "task_assignments"
}
