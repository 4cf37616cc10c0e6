package database

import (
	"fmt"
	"strconv"

	"github.com/DimasTorres/FilmesApi/config"
	"github.com/DimasTorres/FilmesApi/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB abre a conexão com o Postgres, migra o esquema e devolve o
// handle; quem chama injeta a sessão por requisição via middleware.
func ConnectDB() *gorm.DB {
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(db)
	fmt.Println("Database Migrated")

	SeedData(db)

	return db
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Usuario{},
		&model.Endereco{},
		&model.Cinema{},
		&model.Filme{},
		&model.Sessao{},
	)
}
