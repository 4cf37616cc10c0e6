package helper

import (
	"errors"
	"time"

	"github.com/DimasTorres/FilmesApi/config"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUsuarioByUsername(db *gorm.DB, username string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := db.Where(&model.Usuario{Username: username}).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usuario, nil
}

func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["usuarioId"] = tokenClaim.UsuarioID
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret())
}
