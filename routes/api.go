package routes

import (
	api_handlers "kartvizit.link/handlers/api"
	"kartvizit.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api/cards altındaki Directory API uçlarını tanımlar.
// Mutasyon ve çocuk listeleme admin oturumu ister; slug ile okuma ve
// ziyaretçi gönderimleri (feedback/quote oluşturma) bilinçli olarak açıktır.
func registerAPIRoutes(app *fiber.App) {
	cardHandler := api_handlers.NewApiCardHandler()
	feedbackHandler := api_handlers.NewApiFeedbackHandler()
	quoteHandler := api_handlers.NewApiQuoteHandler()

	cardsGroup := app.Group("/api/cards")

	// --- Public uçlar ---
	cardsGroup.Get("/by-slug/:slug", cardHandler.GetCardBySlug)
	cardsGroup.Post("/:id/feedback", feedbackHandler.CreateFeedback)
	cardsGroup.Post("/:id/quotes", quoteHandler.CreateQuote)

	// --- Admin uçları ---
	adminGroup := cardsGroup.Group("")
	adminGroup.Use(middlewares.AdminAPIMiddleware)
	adminGroup.Post("/", cardHandler.CreateCard)
	adminGroup.Put("/:id", cardHandler.UpdateCard)
	adminGroup.Delete("/:id", cardHandler.DeleteCard)
	adminGroup.Get("/:id/feedback", feedbackHandler.ListFeedback)
	adminGroup.Get("/:id/quotes", quoteHandler.ListQuotes)
}
