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
	"github.com/golang-jwt/jwt/v5"
)

func RegisterUsuario(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegisterUsuario").(model.RegisterUsuarioInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := middleware.DB(c)

	existing, err := helper.GetUsuarioByUsername(db, input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.USERNAME_EXISTS, fmt.Errorf("username already exists"), "username")
	}

	hash, err := helper.HashPassword(input.Senha)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	usuario := model.Usuario{
		Username: input.Username,
		Senha:    hash,
		Ativo:    true,
	}
	if err := db.Create(&usuario).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return c.Status(fiber.StatusCreated).JSON(helper.ToReadUsuarioOutput(usuario))
}

func LoginUsuario(c *fiber.Ctx) error {
	loginInput := new(model.LoginUsuarioInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Username == "" || loginInput.Senha == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username e senha são obrigatórios"))
	}
	db := middleware.DB(c)

	usuario, err := helper.GetUsuarioByUsername(db, loginInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if usuario == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Senha, usuario.Senha) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !usuario.Ativo {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("usuário desativado"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UsuarioID: usuario.ID,
		Username:  usuario.Username,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"token":   token,
		"usuario": helper.ToReadUsuarioOutput(*usuario),
	})
}

func Me(c *fiber.Ctx) error {
	jwtToken, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido", errors.New("no token in context"))
	}
	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido", errors.New("invalid claims"))
	}
	usuarioId, ok := claims["usuarioId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido", errors.New("invalid claims"))
	}
	db := middleware.DB(c)

	var usuario model.Usuario
	if err := db.First(&usuario, uint(usuarioId)).Error; err != nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	return c.Status(fiber.StatusOK).JSON(helper.ToReadUsuarioOutput(usuario))
}
