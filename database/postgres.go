package database

import (
	"fotoagenda/config"
	"fotoagenda/models"
	"fotoagenda/utils"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDB is set by InitPostgres when STORE_DRIVER=postgres.
var PostgresDB *gorm.DB

// InitPostgres opens POSTGRES_DSN and migrates the booking tables. The unique
// index on bookings (business_id, date, start_time) keeps a slot from being
// booked twice.
func InitPostgres() {
	log := utils.GetLogger()

	db, err := gorm.Open(postgres.Open(config.AppConfig.PostgresDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to Postgres", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.WeeklySchedule{}, &models.Booking{}); err != nil {
		log.Fatal("Failed to migrate booking tables", zap.Error(err))
	}

	PostgresDB = db
	log.Info("Connected to Postgres")
}
