// handlers/api/api_card_handler.go
package handlers

import (
	"errors"
	"time"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardResponse API'nin dışarı verdiği kart temsili. qr_url kartın public
// adresidir; QR görselini üretmek tüketicinin işi.
type CardResponse struct {
	ID               uint      `json:"id"`
	CompanyName      string    `json:"company_name"`
	Slug             string    `json:"slug"`
	GoogleReviewLink string    `json:"google_review_link"`
	Phone            string    `json:"phone"`
	Whatsapp         string    `json:"whatsapp"`
	PaymentLink      string    `json:"payment_link"`
	Instagram        string    `json:"instagram"`
	Facebook         string    `json:"facebook"`
	Tiktok           string    `json:"tiktok"`
	ThemeColor       string    `json:"theme_color"`
	QRURL            string    `json:"qr_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewCardResponse modeli API temsiline çevirir.
func NewCardResponse(card *models.Card, publicBaseURL string) CardResponse {
	return CardResponse{
		ID:               card.ID,
		CompanyName:      card.CompanyName,
		Slug:             card.Slug,
		GoogleReviewLink: card.GoogleReviewLink,
		Phone:            card.Phone,
		Whatsapp:         card.Whatsapp,
		PaymentLink:      card.PaymentLink,
		Instagram:        card.Instagram,
		Facebook:         card.Facebook,
		Tiktok:           card.Tiktok,
		ThemeColor:       card.ThemeColor,
		QRURL:            PublicCardURL(publicBaseURL, card.Slug),
		CreatedAt:        card.CreatedAt,
		UpdatedAt:        card.UpdatedAt,
	}
}

// PublicCardURL kartın public sayfa adresini üretir.
func PublicCardURL(baseURL, slug string) string {
	return baseURL + "/c/" + slug
}

// ApiCardHandler kart API uçları için handler.
type ApiCardHandler struct {
	service       services.ICardService
	publicBaseURL string
}

// NewApiCardHandler yeni bir ApiCardHandler örneği oluşturur.
func NewApiCardHandler() *ApiCardHandler {
	return &ApiCardHandler{
		service:       services.NewCardService(),
		publicBaseURL: configs.GetConfig().PublicBaseURL,
	}
}

// CreateCard yeni kart oluşturur. (POST /api/cards, admin)
func (h *ApiCardHandler) CreateCard(c *fiber.Ctx) error {
	var input services.CardCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	card, err := h.service.CreateCard(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardValidation):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrSlugTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("API - CreateCard Error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart oluşturulamadı"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(NewCardResponse(card, h.publicBaseURL))
}

// UpdateCard kartı kısmi günceller. (PUT /api/cards/:id, admin)
func (h *ApiCardHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	var input services.CardUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	card, err := h.service.UpdateCard(c.UserContext(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrSlugTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardValidation):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("API - UpdateCard Error", zap.Int("id", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart güncellenemedi"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(NewCardResponse(card, h.publicBaseURL))
}

// DeleteCard kartı ve çocuklarını siler. (DELETE /api/cards/:id, admin)
func (h *ApiCardHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	if err := h.service.DeleteCard(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - DeleteCard Error", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart silinemedi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "kart silindi"})
}

// GetCardBySlug kartı public slug adresiyle döndürür. (GET /api/cards/by-slug/:slug, açık)
func (h *ApiCardHandler) GetCardBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	card, err := h.service.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - GetCardBySlug Error", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "kart getirilemedi"})
	}

	return c.Status(fiber.StatusOK).JSON(NewCardResponse(card, h.publicBaseURL))
}
