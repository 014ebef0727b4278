package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobnest_backend/internal/config"
	"jobnest_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens GORM with the DSN from the config, reusing an existing
// connection on repeated calls.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	// TranslateError lets repositories match on gorm.ErrDuplicatedKey instead
	// of driver-specific pq error codes.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates all models. The composite unique indexes on
// applications, favorites, skills and interests are created here; they close
// the read-then-insert race the controllers otherwise have.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.CompanyAdmin{},
		&models.Job{},
		&models.Application{},
		&models.Favorite{},
		&models.Profile{},
		&models.Skill{},
		&models.Interest{},
		&models.Notification{},
	)
}
