package validate

import (
	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateEndereco() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEnderecoInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputCreateEndereco", input)

		return c.Next()
	}
}

func UpdateEndereco(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateEnderecoInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputUpdateEndereco", input)

		return Id(key)(c)
	}
}
