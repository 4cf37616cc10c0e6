package validate

import (
	"errors"
	"strconv"

	"github.com/DimasTorres/FilmesApi/constants"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Input aplica as regras das tags de validação a qualquer payload.
// O PATCH usa a mesma função sobre o resultado do documento aplicado.
func Input(v any) error {
	return validate.Struct(v)
}

// Id converte o parâmetro de rota em uint e guarda em c.Locals("inputId").
func Id(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.ParseUint(params, 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))

		return c.Next()
	}
}
