// repositories/feedback_repository.go
package repositories

import (
	"context"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFeedbackRepository feedback kayıtları için arayüz. Kayıtlar append-only:
// update veya tekil delete metodu bilinçli olarak yok.
type IFeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
	FindFeedbackByCardID(ctx context.Context, cardID uint) ([]models.Feedback, error)
	CountFeedbackByCardID(ctx context.Context, cardID uint) (int64, error)
}

// FeedbackRepository IFeedbackRepository arayüzünü uygular.
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository global bağlantıyla yeni bir FeedbackRepository oluşturur.
func NewFeedbackRepository() IFeedbackRepository {
	return &FeedbackRepository{db: configsdatabase.GetDB()}
}

// NewFeedbackRepositoryTx verilen transaction üzerinde çalışan repo oluşturur.
func NewFeedbackRepositoryTx(tx *gorm.DB) IFeedbackRepository {
	return &FeedbackRepository{db: tx}
}

// CreateFeedback yeni feedback kaydı ekler. Kartın varlığı servis katmanında
// aynı transaction içinde doğrulanır.
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		configslog.Log.Error("FeedbackRepository.CreateFeedback: DB error", zap.Uint("card_id", feedback.CardID), zap.Error(err))
		return err
	}
	return nil
}

// FindFeedbackByCardID kartın feedback'lerini yeniden eskiye sıralı döndürür.
// Aynı saniyede eklenen kayıtlar için id ikincil sıralama anahtarıdır.
func (r *FeedbackRepository) FindFeedbackByCardID(ctx context.Context, cardID uint) ([]models.Feedback, error) {
	feedbacks := make([]models.Feedback, 0)
	err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&feedbacks).Error
	if err != nil {
		configslog.Log.Error("FeedbackRepository.FindFeedbackByCardID: DB error", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return feedbacks, nil
}

// CountFeedbackByCardID karta ait feedback sayısını döndürür.
func (r *FeedbackRepository) CountFeedbackByCardID(ctx context.Context, cardID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).Where("card_id = ?", cardID).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ IFeedbackRepository = (*FeedbackRepository)(nil)
