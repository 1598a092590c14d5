// services/auth_service.go
package services

import (
	"kartvizit.link/configs"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/utils"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

// ErrInvalidCredentials yanlış parola. Başarısızlık dışında bilgi sızdırmaz.
const ErrInvalidCredentials AuthServiceError = "giriş başarısız"

// IAuthService admin giriş kapısı için arayüz. Tek kiracılı sistemde
// paylaşımlı parola bir bootstrap kimlik bilgisi olarak ele alınır; kontrol
// HTTP katmanından bağımsızdır, session bayrağını handler yönetir.
type IAuthService interface {
	Login(password string) error
}

// AuthService IAuthService arayüzünü uygular. Paylaşımlı parola açılışta
// bcrypt ile hash'lenir; bellekte düz metin tutulmaz.
type AuthService struct {
	passwordHash string
}

// NewAuthService konfigürasyondaki admin parolasıyla yeni bir AuthService
// oluşturur.
func NewAuthService() IAuthService {
	return NewAuthServiceWithPassword(configs.GetConfig().AdminPassword)
}

// NewAuthServiceWithPassword verilen paylaşımlı parolayla servis oluşturur.
func NewAuthServiceWithPassword(password string) IAuthService {
	hash, err := utils.HashPassword(password)
	if err != nil {
		// bcrypt yalnızca 72 bayt üstü girdide hata verir; burada durmak
		// yanlış parolayla sessizce açılmaktan iyidir.
		configslog.SLog.Fatalf("Admin parolası hash'lenemedi: %v", err)
	}
	return &AuthService{passwordHash: hash}
}

// Login paylaşımlı parolayı doğrular. Doğruysa nil döner; session bayrağını
// çağıran taraf set eder.
func (s *AuthService) Login(password string) error {
	if !utils.CheckPassword(s.passwordHash, password) {
		return ErrInvalidCredentials
	}
	return nil
}

var _ IAuthService = (*AuthService)(nil)
