package router

import (
	"github.com/DimasTorres/FilmesApi/handler"
	"github.com/DimasTorres/FilmesApi/middleware"
	"github.com/DimasTorres/FilmesApi/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middleware.RequestID())
	app.Use(middleware.Database(db))
	app.Use(logger.New())

	filme := app.Group("/Filme")
	filme.Get("/", handler.GetFilmes)
	filme.Get("/slug/:slug", handler.GetFilmeBySlug)
	filme.Get("/:filmeId", validate.Id("filmeId"), handler.GetFilmeById)
	filme.Post("/", validate.CreateFilme(), handler.CreateFilme)
	filme.Put("/:filmeId", validate.UpdateFilme("filmeId"), handler.UpdateFilme)
	filme.Patch("/:filmeId", validate.PatchFilme("filmeId"), handler.PatchFilme)
	filme.Delete("/:filmeId", validate.Id("filmeId"), handler.DeleteFilme)

	cinema := app.Group("/Cinema")
	cinema.Get("/", handler.GetCinemas)
	cinema.Get("/slug/:slug", handler.GetCinemaBySlug)
	cinema.Get("/:cinemaId", validate.Id("cinemaId"), handler.GetCinemaById)
	cinema.Post("/", validate.CreateCinema(), handler.CreateCinema)
	cinema.Put("/:cinemaId", validate.UpdateCinema("cinemaId"), handler.UpdateCinema)
	cinema.Delete("/:cinemaId", validate.Id("cinemaId"), handler.DeleteCinema)

	endereco := app.Group("/Endereco")
	endereco.Get("/", handler.GetEnderecos)
	endereco.Get("/:enderecoId", validate.Id("enderecoId"), handler.GetEnderecoById)
	endereco.Post("/", validate.CreateEndereco(), handler.CreateEndereco)
	endereco.Put("/:enderecoId", validate.UpdateEndereco("enderecoId"), handler.UpdateEndereco)
	endereco.Delete("/:enderecoId", validate.Id("enderecoId"), handler.DeleteEndereco)

	sessao := app.Group("/Sessao")
	sessao.Get("/:sessaoId", validate.Id("sessaoId"), handler.GetSessaoById)
	sessao.Post("/", validate.CreateSessao(), handler.CreateSessao)
	sessao.Delete("/:sessaoId", validate.Id("sessaoId"), handler.DeleteSessao)

	usuario := app.Group("/Usuario")
	usuario.Post("/", validate.RegisterUsuario(), handler.RegisterUsuario)
	usuario.Post("/login", handler.LoginUsuario)
	usuario.Get("/me", middleware.Protected(), handler.Me)
}
