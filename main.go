package main

import (
	"log"

	"github.com/DimasTorres/FilmesApi/config"
	"github.com/DimasTorres/FilmesApi/database"
	"github.com/DimasTorres/FilmesApi/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	db := database.ConnectDB()

	router.SetupRoutes(app, db)

	addr := config.Config("APP_ADDR")
	if addr == "" {
		addr = ":8002"
	}
	log.Fatal(app.Listen(addr))
}
