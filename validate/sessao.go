package validate

import (
	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateSessao() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSessaoInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputCreateSessao", input)

		return c.Next()
	}
}
