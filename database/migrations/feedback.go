package migrations

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateFeedbackTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating feedback table...")
	err := db.AutoMigrate(&models.Feedback{})
	if err != nil {
		configslog.Log.Error("Failed to migrate feedback table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Feedback table migrated successfully")
	return nil
}
