// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "kart bulunamadı"
	ErrSlugTaken          CardServiceError = "bu slug başka bir kart tarafından kullanılıyor"
	ErrCardValidation     CardServiceError = "geçersiz kart verisi"
	ErrCardOwnerNotFound  CardServiceError = "varsayılan kart sahibi bulunamadı"
	ErrCardCreationFailed CardServiceError = "kart oluşturulamadı"
	ErrCardUpdateFailed   CardServiceError = "kart güncellenemedi"
	ErrCardDeletionFailed CardServiceError = "kart silinemedi"
)

// CardCreateInput yeni kart için giriş verisi. ThemeColor boş bırakılırsa
// varsayılan marka rengi uygulanır.
type CardCreateInput struct {
	CompanyName      string `json:"company_name"`
	Slug             string `json:"slug"`
	GoogleReviewLink string `json:"google_review_link"`
	Phone            string `json:"phone"`
	Whatsapp         string `json:"whatsapp"`
	PaymentLink      string `json:"payment_link"`
	Instagram        string `json:"instagram"`
	Facebook         string `json:"facebook"`
	Tiktok           string `json:"tiktok"`
	ThemeColor       string `json:"theme_color"`
}

// CardUpdateInput kısmi güncelleme verisi. nil alanlara dokunulmaz;
// boş string'e işaret eden pointer alanı açıkça temizler. "Alan yok" ile
// "alan boş" ayrımı bu yüzden pointer'larla yapılıyor.
type CardUpdateInput struct {
	CompanyName      *string `json:"company_name"`
	Slug             *string `json:"slug"`
	GoogleReviewLink *string `json:"google_review_link"`
	Phone            *string `json:"phone"`
	Whatsapp         *string `json:"whatsapp"`
	PaymentLink      *string `json:"payment_link"`
	Instagram        *string `json:"instagram"`
	Facebook         *string `json:"facebook"`
	Tiktok           *string `json:"tiktok"`
	ThemeColor       *string `json:"theme_color"`
}

// ICardService kart işlemleri için arayüz.
type ICardService interface {
	CreateCard(ctx context.Context, input CardCreateInput) (*models.Card, error)
	UpdateCard(ctx context.Context, id uint, input CardUpdateInput) (*models.Card, error)
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	GetCardBySlug(ctx context.Context, slug string) (*models.Card, error)
	DeleteCard(ctx context.Context, id uint) error
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo     repositories.ICardRepository
	userRepo repositories.IUserRepository
	db       *gorm.DB

	ownerEmail string
	ownerMu    sync.Mutex
	ownerID    uint
}

// NewCardService yeni bir CardService örneği oluşturur. Varsayılan sahip
// konfigürasyondan gelir; hardcoded bir ID yoktur.
func NewCardService() ICardService {
	return &CardService{
		repo:       repositories.NewCardRepository(),
		userRepo:   repositories.NewUserRepository(),
		db:         configsdatabase.GetDB(),
		ownerEmail: configs.GetConfig().DefaultOwnerEmail,
	}
}

// ValidateCardCreate zorunlu alan kontrollerini yapar.
func ValidateCardCreate(input CardCreateInput) error {
	if input.CompanyName == "" {
		return fmt.Errorf("%w: company_name zorunludur", ErrCardValidation)
	}
	if input.Slug == "" {
		return fmt.Errorf("%w: slug zorunludur", ErrCardValidation)
	}
	return nil
}

// defaultOwnerID konfigüre edilen sahibi çözer. Yalnızca başarılı sonuç
// önbelleğe alınır; geçici bir hata sonraki çağrıda yeniden denenir.
func (s *CardService) defaultOwnerID(ctx context.Context) (uint, error) {
	s.ownerMu.Lock()
	defer s.ownerMu.Unlock()

	if s.ownerID != 0 {
		return s.ownerID, nil
	}

	owner, err := s.userRepo.FindUserByEmail(ctx, s.ownerEmail)
	if err != nil {
		configslog.Log.Error("Varsayılan kart sahibi çözülemedi",
			zap.String("email", s.ownerEmail), zap.Error(err))
		return 0, ErrCardOwnerNotFound
	}

	s.ownerID = owner.ID
	return s.ownerID, nil
}

// CreateCard yeni bir kartı tek transaction içinde oluşturur. Slug
// benzersizliği önce transaction içinde kontrol edilir, asıl garanti ise
// unique indekstedir; iki istek aynı anda gelse de ikincisi ErrSlugTaken alır.
func (s *CardService) CreateCard(ctx context.Context, input CardCreateInput) (*models.Card, error) {
	if err := ValidateCardCreate(input); err != nil {
		return nil, err
	}

	ownerID, err := s.defaultOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	card := models.Card{
		UserID:           ownerID,
		CompanyName:      input.CompanyName,
		Slug:             input.Slug,
		GoogleReviewLink: input.GoogleReviewLink,
		Phone:            input.Phone,
		Whatsapp:         input.Whatsapp,
		PaymentLink:      input.PaymentLink,
		Instagram:        input.Instagram,
		Facebook:         input.Facebook,
		Tiktok:           input.Tiktok,
		ThemeColor:       input.ThemeColor,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewCardRepositoryTx(tx)

		exists, err := repoTx.SlugExists(ctx, input.Slug, 0)
		if err != nil {
			return ErrCardCreationFailed
		}
		if exists {
			return ErrSlugTaken
		}

		if err := repoTx.CreateCard(ctx, &card); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return ErrSlugTaken
			}
			return ErrCardCreationFailed
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kart oluşturuldu: ID %d, slug %q", card.ID, card.Slug)
	return &card, nil
}

// UpdateCard kartı kısmi olarak günceller: yalnızca input'ta verilen alanlar
// yazılır, UpdatedAt başarılı mutasyonda tazelenir. Hiç alan verilmemişse
// kayıt olduğu gibi döner ve UpdatedAt değişmez.
func (s *CardService) UpdateCard(ctx context.Context, id uint, input CardUpdateInput) (*models.Card, error) {
	data, err := buildCardPatch(input)
	if err != nil {
		return nil, err
	}

	var updated *models.Card
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewCardRepositoryTx(tx)

		existing, err := repoTx.FindCardByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			return ErrCardUpdateFailed
		}

		if len(data) == 0 {
			updated = existing
			return nil
		}

		if input.Slug != nil && *input.Slug != existing.Slug {
			exists, err := repoTx.SlugExists(ctx, *input.Slug, id)
			if err != nil {
				return ErrCardUpdateFailed
			}
			if exists {
				return ErrSlugTaken
			}
		}

		if err := repoTx.UpdateCardFields(ctx, id, data); err != nil {
			switch {
			case errors.Is(err, repositories.ErrDuplicate):
				return ErrSlugTaken
			case errors.Is(err, repositories.ErrNotFound):
				return ErrCardNotFound
			default:
				return ErrCardUpdateFailed
			}
		}

		updated, err = repoTx.FindCardByID(ctx, id)
		if err != nil {
			return ErrCardUpdateFailed
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Kart güncellendi: ID %d", id)
	return updated, nil
}

// buildCardPatch pointer alanlardan güncellenecek kolon map'ini üretir.
// Var olan ama boş bırakılan zorunlu alanlar validasyon hatasıdır.
func buildCardPatch(input CardUpdateInput) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	if input.CompanyName != nil {
		if *input.CompanyName == "" {
			return nil, fmt.Errorf("%w: company_name boş olamaz", ErrCardValidation)
		}
		data["company_name"] = *input.CompanyName
	}
	if input.Slug != nil {
		if *input.Slug == "" {
			return nil, fmt.Errorf("%w: slug boş olamaz", ErrCardValidation)
		}
		data["slug"] = *input.Slug
	}
	if input.GoogleReviewLink != nil {
		data["google_review_link"] = *input.GoogleReviewLink
	}
	if input.Phone != nil {
		data["phone"] = *input.Phone
	}
	if input.Whatsapp != nil {
		data["whatsapp"] = *input.Whatsapp
	}
	if input.PaymentLink != nil {
		data["payment_link"] = *input.PaymentLink
	}
	if input.Instagram != nil {
		data["instagram"] = *input.Instagram
	}
	if input.Facebook != nil {
		data["facebook"] = *input.Facebook
	}
	if input.Tiktok != nil {
		data["tiktok"] = *input.Tiktok
	}
	if input.ThemeColor != nil {
		data["theme_color"] = *input.ThemeColor
	}

	return data, nil
}

// GetCardByID kartı ID ile getirir.
func (s *CardService) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	card, err := s.repo.FindCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// GetCardBySlug kartı public slug adresiyle getirir. Eşleşme birebirdir.
func (s *CardService) GetCardBySlug(ctx context.Context, slug string) (*models.Card, error) {
	if slug == "" {
		return nil, ErrCardNotFound
	}
	card, err := s.repo.FindCardBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// DeleteCard kartı ve tüm feedback/quote çocuklarını tek transaction içinde
// siler. Çocuk kayıtların bağımsız silinmesi diye bir işlem yoktur.
func (s *CardService) DeleteCard(ctx context.Context, id uint) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewCardRepositoryTx(tx)
		if err := repoTx.DeleteCard(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCardNotFound
			}
			return ErrCardDeletionFailed
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	configslog.SLog.Infof("Kart silindi: ID %d", id)
	return nil
}

var _ ICardService = (*CardService)(nil)
