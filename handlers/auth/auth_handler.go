// handlers/auth/auth_handler.go
package handlers

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/services"
	"kartvizit.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler admin giriş/çıkış işlemleri için handler.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir. (GET /auth/login)
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Title": "Admin Girişi",
	})
}

// Login paylaşımlı parolayı doğrular ve session'a admin bayrağını yazar.
// (POST /auth/login) Hatalı parola yalnızca login'e geri döner; başarısızlık
// dışında bilgi verilmez.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	password := c.FormValue("password")

	if err := h.service.Login(password); err != nil {
		configslog.Log.Warn("Başarısız admin giriş denemesi", zap.String("ip", c.IP()))
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusFound)
	}
	sess.Set(utils.SessionIsAdminKey, true)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout session'ı yok eder. (GET|POST /auth/logout)
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if destroyErr := sess.Destroy(); destroyErr != nil {
			configslog.Log.Error("Logout: session silinemedi", zap.Error(destroyErr))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
