package migrations

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateQuotesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating quotes table...")
	err := db.AutoMigrate(&models.Quote{})
	if err != nil {
		configslog.Log.Error("Failed to migrate quotes table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Quotes table migrated successfully")
	return nil
}
