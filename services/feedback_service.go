// services/feedback_service.go
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

// FeedbackServiceError özel servis hataları
type FeedbackServiceError string

func (e FeedbackServiceError) Error() string { return string(e) }

const (
	ErrFeedbackValidation     FeedbackServiceError = "satisfaction alanı zorunludur"
	ErrFeedbackCreationFailed FeedbackServiceError = "geri bildirim kaydedilemedi"
)

// FeedbackCreateInput public karttan gelen geri bildirim verisi.
// Satisfaction pointer: alan hiç gönderilmediyse validasyon hatası.
type FeedbackCreateInput struct {
	Satisfaction *bool  `json:"satisfaction"`
	Comment      string `json:"comment"`
}

// IFeedbackService geri bildirim işlemleri için arayüz.
type IFeedbackService interface {
	CreateFeedback(ctx context.Context, cardID uint, input FeedbackCreateInput) (*models.Feedback, error)
	ListFeedback(ctx context.Context, cardID uint) ([]models.Feedback, error)
}

// FeedbackService IFeedbackService arayüzünü uygular.
type FeedbackService struct {
	repo     repositories.IFeedbackRepository
	cardRepo repositories.ICardRepository
	db       *gorm.DB
}

// NewFeedbackService yeni bir FeedbackService örneği oluşturur.
func NewFeedbackService() IFeedbackService {
	return &FeedbackService{
		repo:     repositories.NewFeedbackRepository(),
		cardRepo: repositories.NewCardRepository(),
		db:       configsdatabase.GetDB(),
	}
}

// CreateFeedback var olan bir karta geri bildirim ekler. Kart kontrolü ve
// ekleme aynı transaction içindedir; olmayan karta kayıt (orphan) oluşmaz.
func (s *FeedbackService) CreateFeedback(ctx context.Context, cardID uint, input FeedbackCreateInput) (*models.Feedback, error) {
	if input.Satisfaction == nil {
		return nil, ErrFeedbackValidation
	}

	feedback := models.Feedback{
		CardID:       cardID,
		Satisfaction: *input.Satisfaction,
		Comment:      input.Comment,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		if _, err := cardRepoTx.FindCardByID(ctx, cardID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			return ErrFeedbackCreationFailed
		}

		repoTx := repositories.NewFeedbackRepositoryTx(tx)
		if err := repoTx.CreateFeedback(ctx, &feedback); err != nil {
			return ErrFeedbackCreationFailed
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Geri bildirim kaydedildi: kart %d, feedback %d", cardID, feedback.ID)
	return &feedback, nil
}

// ListFeedback kartın geri bildirimlerini yeniden eskiye döndürür. Kart yoksa
// ErrCardNotFound; kartı olup geri bildirimi olmayan için boş liste döner.
func (s *FeedbackService) ListFeedback(ctx context.Context, cardID uint) ([]models.Feedback, error) {
	if _, err := s.cardRepo.FindCardByID(ctx, cardID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return s.repo.FindFeedbackByCardID(ctx, cardID)
}

var _ IFeedbackService = (*FeedbackService)(nil)
