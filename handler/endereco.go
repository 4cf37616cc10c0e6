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

func GetEnderecos(c *fiber.Ctx) error {
	db := middleware.DB(c)

	var enderecos []model.Endereco
	if err := db.Order("id").Find(&enderecos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadEnderecoOutputs(enderecos))
}

func GetEnderecoById(c *fiber.Ctx) error {
	enderecoId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var endereco model.Endereco
	if err := db.First(&endereco, enderecoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadEnderecoOutput(endereco))
}

func CreateEndereco(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEndereco").(model.CreateEnderecoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	endereco := helper.ToEndereco(input)
	if err := db.Create(&endereco).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/Endereco/%d", endereco.ID))
	return c.Status(fiber.StatusCreated).JSON(helper.ToReadEnderecoOutput(endereco))
}

func UpdateEndereco(c *fiber.Ctx) error {
	enderecoId := c.Locals("inputId").(uint)
	input, ok := c.Locals("inputUpdateEndereco").(model.UpdateEnderecoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	var endereco model.Endereco
	if err := db.First(&endereco, enderecoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.ApplyUpdateEndereco(&endereco, input)
	if err := db.Save(&endereco).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func DeleteEndereco(c *fiber.Ctx) error {
	enderecoId := c.Locals("inputId").(uint)
	db := middleware.DB(c)

	var endereco model.Endereco
	if err := db.First(&endereco, enderecoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&endereco).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
