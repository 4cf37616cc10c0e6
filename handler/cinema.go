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

func GetCinemas(c *fiber.Ctx) error {
	db := middleware.DB(c)

	var cinemas model.Cinemas
	if err := db.Preload("Endereco").Order("id").Find(&cinemas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadCinemaOutputs(cinemas))
}

func GetCinemaById(c *fiber.Ctx) error {
	cinemaId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var cinema model.Cinema
	if err := db.Preload("Endereco").First(&cinema, cinemaId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadCinemaOutput(cinema))
}

func GetCinemaBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	db := middleware.DB(c)

	var cinema model.Cinema
	if err := db.Preload("Endereco").Where("slug = ?", slug).First(&cinema).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadCinemaOutput(cinema))
}

func CreateCinema(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCinema").(model.CreateCinemaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	var endereco model.Endereco
	if err := db.First(&endereco, input.EnderecoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Endereço não cadastrado", fmt.Errorf("enderecoId not found"), "enderecoId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cinema := helper.ToCinema(input)
	cinema.Slug = helper.GenerateUniqueCinemaSlug(db, input.Nome, 0)
	if err := db.Create(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	cinema.Endereco = &endereco

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/Cinema/%d", cinema.ID))
	return c.Status(fiber.StatusCreated).JSON(helper.ToReadCinemaOutput(cinema))
}

func UpdateCinema(c *fiber.Ctx) error {
	cinemaId := c.Locals("inputId").(uint)
	input, ok := c.Locals("inputUpdateCinema").(model.UpdateCinemaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	var cinema model.Cinema
	if err := db.First(&cinema, cinemaId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var endereco model.Endereco
	if err := db.First(&endereco, input.EnderecoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Endereço não cadastrado", fmt.Errorf("enderecoId not found"), "enderecoId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Nome != cinema.Nome {
		cinema.Slug = helper.GenerateUniqueCinemaSlug(db, input.Nome, cinema.ID)
	}
	helper.ApplyUpdateCinema(&cinema, input)
	if err := db.Save(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func DeleteCinema(c *fiber.Ctx) error {
	cinemaId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var cinema model.Cinema
	if err := db.First(&cinema, cinemaId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
