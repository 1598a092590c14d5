package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config uygulamanın ortam değişkenlerinden okunan ayarlarını tutar.
type Config struct {
	ListenAddr string // Örn: ":8000"
	AppEnv     string // "development" veya "production"

	// Veritabanı
	DatabaseURL string // DSN (öncelikli). Boşsa DB_* değişkenleri kullanılır.
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Admin girişi (tek paylaşımlı parola, tek kiracı)
	AdminPassword string

	// Varsayılan kart sahibi (tüm kartlar bu kullanıcıya bağlanır)
	DefaultOwnerEmail string

	// Public kart adresi için taban URL (qr_url üretiminde kullanılır)
	PublicBaseURL string

	// CORS izinli origin'ler (virgülle ayrılmış)
	CORSOrigins string
}

var (
	cfg     *Config
	cfgOnce sync.Once
)

// LoadConfig .env dosyasını (varsa) ve ortam değişkenlerini okur.
// İlk çağrıda yüklenir, sonraki çağrılar aynı örneği döndürür.
func LoadConfig() *Config {
	cfgOnce.Do(func() {
		// .env yoksa sorun değil, ortam değişkenleri yeterli.
		_ = godotenv.Load()

		cfg = &Config{
			ListenAddr:        getEnv("LISTEN_ADDR", ":8000"),
			AppEnv:            getEnv("APP_ENV", "development"),
			DatabaseURL:       os.Getenv("DATABASE_URL"),
			DBHost:            getEnv("DB_HOST", "localhost"),
			DBPort:            getEnv("DB_PORT", "5432"),
			DBUser:            getEnv("DB_USER", "postgres"),
			DBPassword:        getEnv("DB_PASSWORD", "postgres"),
			DBName:            getEnv("DB_NAME", "kartvizit"),
			AdminPassword:     getEnv("ADMIN_PASSWORD", "change-me"),
			DefaultOwnerEmail: getEnv("DEFAULT_OWNER_EMAIL", "owner@kartvizit.link"),
			PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
			CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:8000,http://127.0.0.1:8000"),
		}
	})
	return cfg
}

// GetConfig yüklenmiş konfigürasyonu döndürür (gerekirse yükler).
func GetConfig() *Config {
	return LoadConfig()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
