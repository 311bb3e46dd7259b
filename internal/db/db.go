package db

import (
	"log"
	"time"

	"github.com/beautyparlour/parlour-api/internal/config"
	"github.com/beautyparlour/parlour-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Unique violations surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// The stylist<->service relation goes through the explicit Offering
	// model so the pair carries a composite primary key.
	if err := db.SetupJoinTable(&models.Stylist{}, "Services", &models.Offering{}); err != nil {
		log.Fatalf("failed to set up offerings join table: %v", err)
	}
	if err := db.SetupJoinTable(&models.Service{}, "Stylists", &models.Offering{}); err != nil {
		log.Fatalf("failed to set up offerings join table: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Stylist{},
		&models.Offering{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
		&models.Portfolio{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
