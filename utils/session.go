package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionIsAdminKey session içindeki admin bayrağının anahtarı.
const SessionIsAdminKey = "is_admin"

// SessionStart locals'a konmuş store üzerinden isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetIsAdminFromSession admin bayrağını okur. Bayrak yoksa false döner.
func GetIsAdminFromSession(sess *session.Session) bool {
	isAdmin, ok := sess.Get(SessionIsAdminKey).(bool)
	return ok && isAdmin
}
