package configssession

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// SessionExpiry admin oturumunun sabit ömrü. Üst sistemde kesin bir süre
// tanımlı değil; 24 saat makul bir varsayılan olarak seçildi.
const SessionExpiry = 24 * time.Hour

var (
	store     *session.Store
	storeOnce sync.Once
)

// SetupSession sunucu taraflı session store'u hazırlar. Cookie yalnızca
// opak bir token taşır; is_admin bayrağı store'da tutulur.
func SetupSession() *session.Store {
	storeOnce.Do(func() {
		store = session.New(session.Config{
			Expiration:     SessionExpiry,
			KeyLookup:      "cookie:session_id",
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
			KeyGenerator:   uuid.NewString,
		})
	})
	return store
}
