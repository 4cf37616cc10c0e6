package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config busca a variável no .env ou no ambiente do sistema.
func Config(key string) string {
	// sem .env usa as variáveis do sistema
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}
