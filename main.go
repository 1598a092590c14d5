package main

import (
	"kartvizit.link/configs"
	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"
	"kartvizit.link/database"
	"kartvizit.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// Açılışta şema ve varsayılan sahip hazır olmalı.
	database.Initialize(configsdatabase.GetDB(), true, true)

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "Kartvizit",
		Views:   engine,
	})

	// Admin paneli ayrı bir origin'den sunulabildiği için cookie'li CORS.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	app.Static("/static", "./static")

	routes.SetupRoutes(app)

	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
