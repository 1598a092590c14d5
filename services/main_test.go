package services

import (
	"os"
	"testing"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testOwnerEmail = "owner@test.local"

func TestMain(m *testing.M) {
	configslog.InitLogger()
	code := m.Run()
	configslog.SyncLogger()
	os.Exit(code)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Card{}, &models.Feedback{}, &models.Quote{}))

	owner := models.User{Email: testOwnerEmail, PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	return db
}

func newCardServiceForTest(db *gorm.DB) *CardService {
	return &CardService{
		repo:       repositories.NewCardRepositoryTx(db),
		userRepo:   repositories.NewUserRepositoryTx(db),
		db:         db,
		ownerEmail: testOwnerEmail,
	}
}

func newFeedbackServiceForTest(db *gorm.DB) *FeedbackService {
	return &FeedbackService{
		repo:     repositories.NewFeedbackRepositoryTx(db),
		cardRepo: repositories.NewCardRepositoryTx(db),
		db:       db,
	}
}

func newQuoteServiceForTest(db *gorm.DB) *QuoteService {
	return &QuoteService{
		repo:     repositories.NewQuoteRepositoryTx(db),
		cardRepo: repositories.NewCardRepositoryTx(db),
		db:       db,
	}
}
