package database

import (
	"log"

	"github.com/DimasTorres/FilmesApi/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	usuarios := []model.Usuario{
		{Username: "admin", Senha: string(bytes), Ativo: true},
	}

	for _, usuario := range usuarios {
		if err := db.Where(model.Usuario{Username: usuario.Username}).FirstOrCreate(&usuario).Error; err != nil {
			log.Println("failed to seed usuario:", usuario.Username, "error:", err)
		}
	}
}
