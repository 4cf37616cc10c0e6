package helper

import (
	"fmt"

	"github.com/DimasTorres/FilmesApi/model"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// exceptId ignora a própria linha na checagem de unicidade; zero na criação.
func GenerateUniqueFilmeSlug(tx *gorm.DB, titulo string, exceptId uint) string {
	base := slug.Make(titulo)
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Filme{}).
			Where("slug = ?", result)
		if exceptId != 0 {
			query = query.Where("id <> ?", exceptId)
		}
		query.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

func GenerateUniqueCinemaSlug(tx *gorm.DB, nome string, exceptId uint) string {
	base := slug.Make(nome)
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Cinema{}).
			Where("slug = ?", result)
		if exceptId != 0 {
			query = query.Where("id <> ?", exceptId)
		}
		query.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
