package routes

import (
	web_handlers "kartvizit.link/handlers/web"
	"kartvizit.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerWebRoutes(app *fiber.App) {
	webHandler := web_handlers.NewWebHandler()

	app.Get("/", webHandler.Home)
	app.Get("/smartcard", webHandler.Landing)

	// Public kart sayfası
	app.Get("/c/:slug", webHandler.CardPage)

	// Admin paneli (oturum yoksa login'e yönlendirilir)
	adminGroup := app.Group("/admin")
	adminGroup.Use(middlewares.AdminMiddleware)
	adminGroup.Get("/", webHandler.AdminPage)
}
