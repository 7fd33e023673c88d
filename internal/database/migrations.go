package database

import (
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
)

// AutoMigrate creates the schema for every collection.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Notification{},
		&models.PayoutRequest{},
		&models.Dispute{},
		&models.Affiliate{},
		&models.User{},
		&models.AccountActivity{},
		&models.Listing{},
		&models.Transaction{},
		&models.Setting{},
	)
}
