package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

// ValidationErrorResponse devolve 400 enumerando os campos reprovados,
// no formato {"errors": {"Campo": "regra"}}.
func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	} else if err != nil {
		fields["_"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status": "error",
		"errors": fields,
	})
}

// ApplySkipTake pagina por ordem de inserção. skip < 0 vira 0; take nil
// vira o padrão de 10 itens, e take=0 explícito devolve página vazia.
func ApplySkipTake(query *gorm.DB, skip int, take *int) *gorm.DB {
	if skip < 0 {
		skip = 0
	}
	limit := 10
	if take != nil {
		limit = *take
		if limit < 0 {
			limit = 0
		}
	}
	return query.Order("id").Offset(skip).Limit(limit)
}

func Ptr[T any](v T) *T {
	return &v
}
