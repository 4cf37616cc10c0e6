package handler

import (
	"errors"
	"fmt"

	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/helper"
	"github.com/DimasTorres/FilmesApi/middleware"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/DimasTorres/FilmesApi/validate"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetFilmes(c *fiber.Ctx) error {
	filterInput := new(model.FilterFilmeInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := middleware.DB(c)

	// A paginação vem antes do filtro por cinema, na ordem de inserção.
	var filmes model.Filmes
	query := utils.ApplySkipTake(db.Model(&model.Filme{}), filterInput.Skip, filterInput.Take)
	if err := query.Find(&filmes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if filterInput.NomeCinema != "" {
		filtered, err := filterFilmesByCinema(db, filmes, filterInput.NomeCinema)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		filmes = filtered
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadFilmeOutputs(filmes))
}

// filterFilmesByCinema mantém apenas os filmes da página com ao menos
// uma sessão num cinema de nome exatamente igual (sensível a maiúsculas).
func filterFilmesByCinema(db *gorm.DB, filmes model.Filmes, nomeCinema string) (model.Filmes, error) {
	if len(filmes) == 0 {
		return filmes, nil
	}

	ids := make([]uint, 0, len(filmes))
	for _, filme := range filmes {
		ids = append(ids, filme.ID)
	}

	var matched []uint
	err := db.Model(&model.Sessao{}).
		Distinct("sessoes.filme_id").
		Joins("JOIN cinemas ON cinemas.id = sessoes.cinema_id").
		Where("cinemas.nome = ?", nomeCinema).
		Where("sessoes.filme_id IN ?", ids).
		Pluck("sessoes.filme_id", &matched).Error
	if err != nil {
		return nil, err
	}

	keep := make(map[uint]bool, len(matched))
	for _, id := range matched {
		keep[id] = true
	}

	filtered := make(model.Filmes, 0, len(matched))
	for _, filme := range filmes {
		if keep[filme.ID] {
			filtered = append(filtered, filme)
		}
	}
	return filtered, nil
}

func GetFilmeById(c *fiber.Ctx) error {
	filmeId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var filme model.Filme
	if err := db.First(&filme, filmeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadFilmeOutput(filme))
}

func GetFilmeBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	db := middleware.DB(c)

	var filme model.Filme
	if err := db.Where("slug = ?", slug).First(&filme).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadFilmeOutput(filme))
}

func CreateFilme(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateFilme").(model.CreateFilmeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	filme := helper.ToFilme(input)
	filme.Slug = helper.GenerateUniqueFilmeSlug(db, input.Titulo, 0)
	if err := db.Create(&filme).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/Filme/%d", filme.ID))
	return c.Status(fiber.StatusCreated).JSON(helper.ToReadFilmeOutput(filme))
}

func UpdateFilme(c *fiber.Ctx) error {
	filmeId := c.Locals("inputId").(uint)
	input, ok := c.Locals("inputUpdateFilme").(model.UpdateFilmeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	var filme model.Filme
	if err := db.First(&filme, filmeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Titulo != filme.Titulo {
		filme.Slug = helper.GenerateUniqueFilmeSlug(db, input.Titulo, filme.ID)
	}
	helper.ApplyUpdateFilme(&filme, input)
	if err := db.Save(&filme).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// PatchFilme aplica o documento sobre uma cópia do estado atual e só
// persiste se a cópia passar na mesma validação do PUT.
func PatchFilme(c *fiber.Ctx) error {
	filmeId := c.Locals("inputId").(uint)
	doc, ok := c.Locals("inputPatchFilme").(helper.PatchDocument)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	var filme model.Filme
	if err := db.First(&filme, filmeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	target := helper.ToUpdateFilmeInput(filme)
	if err := helper.ApplyFilmePatch(doc, &target); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := validate.Input(target); err != nil {
		return utils.ValidationErrorResponse(c, err)
	}

	if target.Titulo != filme.Titulo {
		filme.Slug = helper.GenerateUniqueFilmeSlug(db, target.Titulo, filme.ID)
	}
	helper.ApplyUpdateFilme(&filme, target)
	if err := db.Save(&filme).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadFilmeOutput(filme))
}

func DeleteFilme(c *fiber.Ctx) error {
	filmeId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var filme model.Filme
	if err := db.First(&filme, filmeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&filme).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
