package handler

import (
	"errors"
	"fmt"

	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/helper"
	"github.com/DimasTorres/FilmesApi/middleware"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateSessao(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateSessao").(model.CreateSessaoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	var filme model.Filme
	if err := db.First(&filme, input.FilmeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Filme não cadastrado", fmt.Errorf("filmeId not found"), "filmeId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var cinema model.Cinema
	if err := db.First(&cinema, input.CinemaId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cinema não cadastrado", fmt.Errorf("cinemaId not found"), "cinemaId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sessao := helper.ToSessao(input)
	if err := db.Create(&sessao).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/Sessao/%d", sessao.ID))
	return c.Status(fiber.StatusCreated).JSON(helper.ToReadSessaoOutput(sessao))
}

func GetSessaoById(c *fiber.Ctx) error {
	sessaoId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var sessao model.Sessao
	if err := db.First(&sessao, sessaoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadSessaoOutput(sessao))
}

func DeleteSessao(c *fiber.Ctx) error {
	sessaoId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var sessao model.Sessao
	if err := db.First(&sessao, sessaoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&sessao).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
