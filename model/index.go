package model

import "time"

// DTO é a base comum das entidades persistidas. O id é gerado pelo
// banco e nunca muda depois de atribuído.
type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenClaim struct {
	UsuarioID uint   `json:"usuarioId"`
	Username  string `json:"username"`
}
