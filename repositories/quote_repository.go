// repositories/quote_repository.go
package repositories

import (
	"context"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IQuoteRepository teklif talepleri için arayüz. Feedback gibi append-only.
type IQuoteRepository interface {
	CreateQuote(ctx context.Context, quote *models.Quote) error
	FindQuotesByCardID(ctx context.Context, cardID uint) ([]models.Quote, error)
	CountQuotesByCardID(ctx context.Context, cardID uint) (int64, error)
}

// QuoteRepository IQuoteRepository arayüzünü uygular.
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository global bağlantıyla yeni bir QuoteRepository oluşturur.
func NewQuoteRepository() IQuoteRepository {
	return &QuoteRepository{db: configsdatabase.GetDB()}
}

// NewQuoteRepositoryTx verilen transaction üzerinde çalışan repo oluşturur.
func NewQuoteRepositoryTx(tx *gorm.DB) IQuoteRepository {
	return &QuoteRepository{db: tx}
}

// CreateQuote yeni teklif talebi ekler.
func (r *QuoteRepository) CreateQuote(ctx context.Context, quote *models.Quote) error {
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		configslog.Log.Error("QuoteRepository.CreateQuote: DB error", zap.Uint("card_id", quote.CardID), zap.Error(err))
		return err
	}
	return nil
}

// FindQuotesByCardID kartın tekliflerini yeniden eskiye sıralı döndürür.
func (r *QuoteRepository) FindQuotesByCardID(ctx context.Context, cardID uint) ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&quotes).Error
	if err != nil {
		configslog.Log.Error("QuoteRepository.FindQuotesByCardID: DB error", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return quotes, nil
}

// CountQuotesByCardID karta ait teklif sayısını döndürür.
func (r *QuoteRepository) CountQuotesByCardID(ctx context.Context, cardID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Quote{}).Where("card_id = ?", cardID).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ IQuoteRepository = (*QuoteRepository)(nil)
