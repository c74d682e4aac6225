package main

import (
	"log"

	"petwell_client/api"
	"petwell_client/cache"
	"petwell_client/config"
	"petwell_client/helper"
	"petwell_client/router"
	"petwell_client/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // ảnh đính kèm bài viết tối đa 20MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("WEB_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	cache.ConnectCache()
	store.Init(cache.RDB)
	api.Connect()

	helper.StartDraftJanitor()
	defer helper.StopDraftJanitor()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8003")))
}
