package postgres

import (
	"log"

	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/config"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.TargetConfig) *gorm.DB {
	dsn := cfg.TargetDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.SalesTargetModel{}, &models.SalesOrderModel{})

	return db
}
