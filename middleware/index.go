package middleware

import (
	"errors"
	"strings"

	"github.com/DimasTorres/FilmesApi/helper"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Database entrega a cada requisição uma sessão própria do banco,
// amarrada ao contexto da requisição, em c.Locals("db").
func Database(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("db", db.WithContext(c.UserContext()))
		return c.Next()
	}
}

// DB recupera a sessão aberta por Database.
func DB(c *fiber.Ctx) *gorm.DB {
	return c.Locals("db").(*gorm.DB)
}

func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	})
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token ausente", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return helper.JwtSecret(), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
