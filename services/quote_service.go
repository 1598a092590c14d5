// services/quote_service.go
package services

import (
	"context"
	"errors"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/repositories"

	"gorm.io/gorm"
)

// QuoteServiceError özel servis hataları
type QuoteServiceError string

func (e QuoteServiceError) Error() string { return string(e) }

const (
	ErrQuoteNameRequired   QuoteServiceError = "name alanı zorunludur"
	ErrQuoteCreationFailed QuoteServiceError = "teklif talebi kaydedilemedi"
)

// QuoteCreateInput public karttan gelen teklif talebi verisi.
type QuoteCreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// IQuoteService teklif talebi işlemleri için arayüz.
type IQuoteService interface {
	CreateQuote(ctx context.Context, cardID uint, input QuoteCreateInput) (*models.Quote, error)
	ListQuotes(ctx context.Context, cardID uint) ([]models.Quote, error)
}

// QuoteService IQuoteService arayüzünü uygular.
type QuoteService struct {
	repo     repositories.IQuoteRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB
}

// NewQuoteService yeni bir QuoteService örneği oluşturur.
func NewQuoteService() IQuoteService {
	return &QuoteService{
		repo:     repositories.NewQuoteRepository(),
		cardRepo: repositories.NewCardRepository(),
		db:       configsdatabase.GetDB(),
	}
}

// CreateQuote var olan bir karta teklif talebi ekler. Feedback ile aynı
// sözleşme: kart yoksa ErrCardNotFound, orphan kayıt oluşmaz.
func (s *QuoteService) CreateQuote(ctx context.Context, cardID uint, input QuoteCreateInput) (*models.Quote, error) {
	if input.Name == "" {
		return nil, ErrQuoteNameRequired
	}

	quote := models.Quote{
		CardID:  cardID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		if _, err := cardRepoTx.FindCardByID(ctx, cardID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			return ErrQuoteCreationFailed
		}

		repoTx := repositories.NewQuoteRepositoryTx(tx)
		if err := repoTx.CreateQuote(ctx, &quote); err != nil {
			return ErrQuoteCreationFailed
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Teklif talebi kaydedildi: kart %d, quote %d", cardID, quote.ID)
	return &quote, nil
}

// ListQuotes kartın teklif taleplerini yeniden eskiye döndürür.
func (s *QuoteService) ListQuotes(ctx context.Context, cardID uint) ([]models.Quote, error) {
	if _, err := s.cardRepo.FindCardByID(ctx, cardID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return s.repo.FindQuotesByCardID(ctx, cardID)
}

var _ IQuoteService = (*QuoteService)(nil)
