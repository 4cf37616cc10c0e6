package model

// Sessao liga um Filme a um Cinema. A grade de horários não é
// modelada; a entidade existe para o filtro por nome de cinema.
type Sessao struct {
	DTO
	FilmeId  uint    `gorm:"not null;index" json:"filmeId"`
	CinemaId uint    `gorm:"not null;index" json:"cinemaId"`
	Filme    *Filme  `gorm:"foreignKey:FilmeId" json:"filme,omitempty"`
	Cinema   *Cinema `gorm:"foreignKey:CinemaId" json:"cinema,omitempty"`
}

func (Sessao) TableName() string {
	return "sessoes"
}

type CreateSessaoInput struct {
	FilmeId  uint `json:"filmeId" validate:"required"`
	CinemaId uint `json:"cinemaId" validate:"required"`
}

type ReadSessaoOutput struct {
	ID       uint `json:"id"`
	FilmeId  uint `json:"filmeId"`
	CinemaId uint `json:"cinemaId"`
}
