package model

type Usuario struct {
	DTO
	Username string `gorm:"not null;uniqueIndex" validate:"required" json:"username"`
	Senha    string `gorm:"not null" json:"-"`
	Ativo    bool   `gorm:"not null;default:true" json:"ativo"`
}

type RegisterUsuarioInput struct {
	Username      string `json:"username" validate:"required,min=3,max=64"`
	Senha         string `json:"senha" validate:"required,min=6"`
	ConfirmaSenha string `json:"confirmaSenha" validate:"required"`
}

type LoginUsuarioInput struct {
	Username string `json:"username" validate:"required"`
	Senha    string `json:"senha" validate:"required"`
}

type ReadUsuarioOutput struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Ativo    bool   `json:"ativo"`
}
