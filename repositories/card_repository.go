// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	UpdateCardFields(ctx context.Context, id uint, data map[string]interface{}) error
	FindCardByID(ctx context.Context, id uint) (*models.Card, error)
	FindCardBySlug(ctx context.Context, slug string) (*models.Card, error)
	DeleteCard(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	GetCardCount(ctx context.Context) (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository global bağlantıyla yeni bir CardRepository oluşturur.
func NewCardRepository() ICardRepository {
	return &CardRepository{db: configsdatabase.GetDB()}
}

// NewCardRepositoryTx verilen transaction/bağlantı üzerinde çalışan bir
// CardRepository oluşturur. Servis katmanı transaction içinde bunu kullanır.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return &CardRepository{db: tx}
}

// CreateCard yeni kartı kaydeder. Slug çakışması unique index tarafından
// yakalanır ve ErrDuplicate olarak döner; kısmi yazım oluşmaz.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	err := r.db.WithContext(ctx).Create(card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("CardRepository.CreateCard: DB error", zap.Error(err))
		return err
	}
	return nil
}

// UpdateCardFields kartın yalnızca map içinde verilen kolonlarını günceller.
// GORM UpdatedAt kolonunu otomatik tazeler. Kayıt yoksa ErrNotFound döner.
func (r *CardRepository) UpdateCardFields(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Card{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("CardRepository.UpdateCardFields: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindCardByID kartı ID ile bulur.
func (r *CardRepository) FindCardByID(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindCardByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindCardBySlug kartı slug ile bulur. Eşleşme birebirdir; küçük/büyük harf
// dönüşümü veya trim yapılmaz.
func (r *CardRepository) FindCardBySlug(ctx context.Context, slug string) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindCardBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// DeleteCard kartı siler; feedback ve quote kayıtları da silinir. FK cascade
// tanımlı olsa da Select ile çocuklar açıkça dahil ediliyor, böylece FK'sız
// test depolamalarında da davranış aynı kalır.
func (r *CardRepository) DeleteCard(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Select("Feedbacks", "Quotes").Delete(&models.Card{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		configslog.Log.Error("CardRepository.DeleteCard: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SlugExists verilen slug'ın başka bir kartta kullanılıp kullanılmadığını
// kontrol eder. excludeID > 0 ise o kart hariç tutulur (update senaryosu).
// Erken ve anlaşılır hata üretmek içindir; asıl garanti unique indekste.
func (r *CardRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Card{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		configslog.Log.Error("CardRepository.SlugExists: DB error", zap.String("slug", slug), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// GetCardCount toplam kart sayısını döndürür.
func (r *CardRepository) GetCardCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
