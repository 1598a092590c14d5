package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// isAdminRequest routes katmanının locals'a koyduğu admin bayrağını okur.
func isAdminRequest(c *fiber.Ctx) bool {
	isAdmin, ok := c.Locals("isAdmin").(bool)
	return ok && isAdmin
}

// AdminMiddleware admin sayfalarını korur. Oturum yoksa login'e yönlendirir;
// ham bir yetki hatası sayfa kullanıcısına gösterilmez.
func AdminMiddleware(c *fiber.Ctx) error {
	if !isAdminRequest(c) {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	return c.Next()
}

// AdminAPIMiddleware admin API uçlarını korur. API istemcisi redirect değil
// yapılandırılmış hata alır.
func AdminAPIMiddleware(c *fiber.Ctx) error {
	if !isAdminRequest(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "yetkilendirme gerekli"})
	}
	return c.Next()
}

// GuestMiddleware girişli admin'in login sayfasına dönmesini engeller.
func GuestMiddleware(c *fiber.Ctx) error {
	if isAdminRequest(c) {
		return c.Redirect("/admin", fiber.StatusFound)
	}
	return c.Next()
}
