package seeders

import (
	"errors"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDefaultOwner konfigüre edilen varsayılan kart sahibini oluşturur.
// Kayıt zaten varsa dokunulmaz; tüm kartlar bu kullanıcıya bağlanır.
func SeedDefaultOwner(db *gorm.DB) error {
	cfg := configs.GetConfig()

	var existing models.User
	err := db.Where("email = ?", cfg.DefaultOwnerEmail).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("Varsayılan sahip zaten mevcut: %s", cfg.DefaultOwnerEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Varsayılan sahip sorgulanamadı", zap.Error(err))
		return err
	}

	// Admin kapısı paylaşımlı parolayla çalışır; kullanıcı parolası yalnızca
	// ileride kişisel girişe geçilirse kullanılacak, yine de hash'li tutulur.
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		configslog.Log.Error("Varsayılan sahip parolası hash'lenemedi", zap.Error(err))
		return err
	}

	owner := models.User{
		Email:        cfg.DefaultOwnerEmail,
		PasswordHash: hash,
	}
	if err := db.Create(&owner).Error; err != nil {
		configslog.Log.Error("Varsayılan sahip oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Varsayılan sahip oluşturuldu: %s (ID %d)", owner.Email, owner.ID)
	return nil
}
