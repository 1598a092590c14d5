// handlers/api/api_quote_handler.go
package handlers

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApiQuoteHandler teklif talebi uçları için handler.
type ApiQuoteHandler struct {
	service services.IQuoteService
}

// NewApiQuoteHandler yeni bir ApiQuoteHandler örneği oluşturur.
func NewApiQuoteHandler() *ApiQuoteHandler {
	return &ApiQuoteHandler{service: services.NewQuoteService()}
}

// CreateQuote karta teklif talebi ekler. (POST /api/cards/:id/quotes, açık)
func (h *ApiQuoteHandler) CreateQuote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	var input services.QuoteCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	quote, err := h.service.CreateQuote(c.UserContext(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrQuoteNameRequired):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("API - CreateQuote Error", zap.Int("card_id", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "teklif talebi kaydedilemedi"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(quote)
}

// ListQuotes kartın teklif taleplerini yeniden eskiye listeler.
// (GET /api/cards/:id/quotes, admin)
func (h *ApiQuoteHandler) ListQuotes(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	quotes, err := h.service.ListQuotes(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - ListQuotes Error", zap.Int("card_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "teklifler listelenemedi"})
	}

	return c.Status(fiber.StatusOK).JSON(quotes)
}
