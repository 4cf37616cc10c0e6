package model

type Cinema struct {
	DTO
	Nome       string    `gorm:"not null;index" validate:"required" json:"nome"`
	Slug       string    `gorm:"uniqueIndex" json:"slug"`
	EnderecoId uint      `gorm:"not null" json:"enderecoId"`
	Endereco   *Endereco `gorm:"foreignKey:EnderecoId" json:"endereco,omitempty"`
	Sessoes    []Sessao  `gorm:"foreignKey:CinemaId" json:"sessoes,omitempty"`
}

type Cinemas []Cinema

type CreateCinemaInput struct {
	Nome       string `json:"nome" validate:"required"`
	EnderecoId uint   `json:"enderecoId" validate:"required"`
}

type UpdateCinemaInput struct {
	Nome       string `json:"nome" validate:"required"`
	EnderecoId uint   `json:"enderecoId" validate:"required"`
}

type ReadCinemaOutput struct {
	ID         uint                `json:"id"`
	Nome       string              `json:"nome"`
	Slug       string              `json:"slug"`
	EnderecoId uint                `json:"enderecoId"`
	Endereco   *ReadEnderecoOutput `json:"endereco,omitempty"`
}
