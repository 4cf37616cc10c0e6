package validate

import (
	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCinemaInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputCreateCinema", input)

		return c.Next()
	}
}

func UpdateCinema(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateCinemaInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputUpdateCinema", input)

		return Id(key)(c)
	}
}
