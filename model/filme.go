package model

import (
	"time"

	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/shopspring/decimal"
)

type Filme struct {
	DTO
	Titulo         string           `gorm:"not null;index" validate:"required" json:"titulo"`
	Diretor        string           `json:"diretor"`
	Genero         string           `gorm:"index" json:"genero"`
	Duracao        int              `json:"duracao"` // em minutos
	DataLancamento utils.CustomDate `gorm:"type:date" json:"dataLancamento"`
	Faturamento    decimal.Decimal  `gorm:"type:numeric(14,2)" json:"faturamento"`
	Slug           string           `gorm:"uniqueIndex" json:"slug"`
	Sessoes        []Sessao         `gorm:"foreignKey:FilmeId" json:"sessoes,omitempty"`
}

type Filmes []Filme

type CreateFilmeInput struct {
	Titulo         string           `json:"titulo" validate:"required"`
	Diretor        string           `json:"diretor"`
	Genero         string           `json:"genero"`
	Duracao        int              `json:"duracao"`
	DataLancamento utils.CustomDate `json:"dataLancamento"`
	Faturamento    decimal.Decimal  `json:"faturamento"`
}

// UpdateFilmeInput é o alvo tanto do PUT quanto do documento de patch;
// as duas operações passam pela mesma validação.
type UpdateFilmeInput struct {
	Titulo         string           `json:"titulo" validate:"required"`
	Diretor        string           `json:"diretor"`
	Genero         string           `json:"genero"`
	Duracao        int              `json:"duracao"`
	DataLancamento utils.CustomDate `json:"dataLancamento"`
	Faturamento    decimal.Decimal  `json:"faturamento"`
}

// ReadFilmeOutput carrega HoraDaConsulta, preenchida na hora da
// serialização da resposta e nunca persistida.
type ReadFilmeOutput struct {
	ID             uint             `json:"id"`
	Titulo         string           `json:"titulo"`
	Diretor        string           `json:"diretor"`
	Genero         string           `json:"genero"`
	Duracao        int              `json:"duracao"`
	DataLancamento utils.CustomDate `json:"dataLancamento"`
	Faturamento    decimal.Decimal  `json:"faturamento"`
	Slug           string           `json:"slug"`
	HoraDaConsulta time.Time        `json:"horaDaConsulta"`
}

// Take é ponteiro para distinguir ausente (padrão 10) de take=0 explícito.
type FilterFilmeInput struct {
	Skip       int    `query:"skip"`
	Take       *int   `query:"take"`
	NomeCinema string `query:"nomeCinema"`
}
