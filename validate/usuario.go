package validate

import (
	"errors"

	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
)

func RegisterUsuario() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterUsuarioInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, err)
		}

		if input.Senha != input.ConfirmaSenha {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.PASSWORDS_NOT_MATCH, errors.New("senha != confirmaSenha"), "confirmaSenha")
		}

		c.Locals("inputRegisterUsuario", input)

		return c.Next()
	}
}
