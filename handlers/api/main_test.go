package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"kartvizit.link/configs"
	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/database/seeders"
	"kartvizit.link/models"
	"kartvizit.link/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminPassword = "test-admin-parola"

func TestMain(m *testing.M) {
	// Konfigürasyon bir kez yüklendiği için ortam testten önce sabitlenir.
	os.Setenv("ADMIN_PASSWORD", testAdminPassword)
	os.Setenv("DEFAULT_OWNER_EMAIL", "owner@test.local")
	os.Setenv("PUBLIC_BASE_URL", "http://kartvizit.test")
	configs.LoadConfig()
	configslog.InitLogger()
	code := m.Run()
	configslog.SyncLogger()
	os.Exit(code)
}

// setupTestApp taze bir veritabanı ve tüm rotalarıyla uygulama kurar.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Card{}, &models.Feedback{}, &models.Quote{}))
	require.NoError(t, seeders.SeedDefaultOwner(db))

	configsdatabase.SetDB(db)

	app := fiber.New()
	routes.SetupRoutes(app)
	return app
}

// loginAsAdmin paylaşımlı parolayla giriş yapar ve session cookie'sini döndürür.
func loginAsAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()

	form := url.Values{"password": {testAdminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))

	cookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, cookie, "girişte session cookie verilmeli")
	return strings.Split(cookie, ";")[0]
}

func jsonRequest(method, target string, body interface{}, cookie string) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
