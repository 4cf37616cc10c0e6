package validate

import (
	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/helper"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
)

func CreateFilme() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFilmeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputCreateFilme", input)

		return c.Next()
	}
}

func UpdateFilme(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateFilmeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		c.Locals("inputUpdateFilme", input)

		return Id(key)(c)
	}
}

// PatchFilme só confere a forma do documento; o resultado da aplicação
// é validado no handler com as mesmas regras do PUT.
func PatchFilme(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc helper.PatchDocument
		if err := c.BodyParser(&doc); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputPatchFilme", doc)

		return Id(key)(c)
	}
}
