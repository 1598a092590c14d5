// handlers/web/web_handler.go
package handlers

import (
	"errors"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WebHandler HTML sayfalarını sunan handler: public kart sayfası, admin
// paneli ve tanıtım sayfası.
type WebHandler struct {
	cardService services.ICardService
}

// NewWebHandler yeni bir WebHandler örneği oluşturur.
func NewWebHandler() *WebHandler {
	return &WebHandler{cardService: services.NewCardService()}
}

// Home servis durumu mesajı döndürür. (GET /)
func (h *WebHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Kartvizit API çalışıyor"})
}

// CardPage public kart sayfasını render eder. (GET /c/:slug, açık)
func (h *WebHandler) CardPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	card, err := h.cardService.GetCardBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Kart Bulunamadı"})
		}
		configslog.Log.Error("Web - CardPage Error", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/404", fiber.Map{"Title": "Bir Hata Oluştu"})
	}

	return c.Render("public/card", fiber.Map{
		"Title": card.CompanyName,
		"Card":  card,
	})
}

// AdminPage admin panelini render eder. Route AdminMiddleware ile korunur.
// (GET /admin)
func (h *WebHandler) AdminPage(c *fiber.Ctx) error {
	return c.Render("admin/index", fiber.Map{
		"Title": "Admin Paneli",
	})
}

// Landing tanıtım sayfasını render eder. (GET /smartcard)
func (h *WebHandler) Landing(c *fiber.Ctx) error {
	return c.Render("landing/index", fiber.Map{
		"Title": "Dijital Kartvizit",
	})
}
