package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. TranslateError turns driver unique-violation
// errors into gorm.ErrDuplicatedKey, which the repositories rely on: the
// unique index on users.username is the real enforcer of uniqueness, not
// the application-level pre-check.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&RoleModel{},
		&UserModel{},
		&UserRoleLinkModel{},
		&TaskModel{},
		&TaskAssignmentModel{},
	)
}
