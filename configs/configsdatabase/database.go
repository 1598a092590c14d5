package configsdatabase

import (
	"fmt"
	"sync"
	"time"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db     *gorm.DB
	dbOnce sync.Once
)

// InitDB PostgreSQL bağlantısını kurar. main içinde bir kez çağrılmalı.
// TranslateError açık: unique ihlalleri gorm.ErrDuplicatedKey olarak döner,
// repository katmanı buna güvenir.
func InitDB() {
	dbOnce.Do(func() {
		cfg := configs.GetConfig()

		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		}

		gormLogLevel := logger.Warn
		if cfg.AppEnv == "development" {
			gormLogLevel = logger.Info
		}

		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(gormLogLevel),
			TranslateError: true,
		})
		if err != nil {
			configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
			return
		}

		sqlDB, err := conn.DB()
		if err != nil {
			configslog.Log.Fatal("Veritabanı bağlantı havuzuna erişilemedi", zap.Error(err))
			return
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		db = conn
		configslog.SLog.Info("Veritabanı bağlantısı kuruldu")
	})
}

// GetDB aktif GORM bağlantısını döndürür. InitDB çağrılmadan kullanılmamalı.
func GetDB() *gorm.DB {
	return db
}

// SetDB test ortamında bağlantıyı değiştirmek için kullanılır.
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB bağlantı havuzunu kapatır. main'de defer ile çağrılır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken bağlantıya erişilemedi", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
