// handlers/api/api_feedback_handler.go
package handlers

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApiFeedbackHandler kart geri bildirim uçları için handler. Oluşturma
// public karttan anonim yapılır, listeleme admin'e aittir.
type ApiFeedbackHandler struct {
	service services.IFeedbackService
}

// NewApiFeedbackHandler yeni bir ApiFeedbackHandler örneği oluşturur.
func NewApiFeedbackHandler() *ApiFeedbackHandler {
	return &ApiFeedbackHandler{service: services.NewFeedbackService()}
}

// CreateFeedback karta geri bildirim ekler. (POST /api/cards/:id/feedback, açık)
func (h *ApiFeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	var input services.FeedbackCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	feedback, err := h.service.CreateFeedback(c.UserContext(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrFeedbackValidation):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("API - CreateFeedback Error", zap.Int("card_id", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "geri bildirim kaydedilemedi"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// ListFeedback kartın geri bildirimlerini yeniden eskiye listeler.
// (GET /api/cards/:id/feedback, admin)
func (h *ApiFeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrCardNotFound.Error()})
	}

	feedbacks, err := h.service.ListFeedback(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("API - ListFeedback Error", zap.Int("card_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "geri bildirimler listelenemedi"})
	}

	return c.Status(fiber.StatusOK).JSON(feedbacks)
}
