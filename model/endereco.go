package model

type Endereco struct {
	DTO
	Logradouro string `gorm:"not null" validate:"required" json:"logradouro"`
	Numero     int    `json:"numero"`
	Bairro     string `json:"bairro"`
}

type CreateEnderecoInput struct {
	Logradouro string `json:"logradouro" validate:"required"`
	Numero     int    `json:"numero"`
	Bairro     string `json:"bairro"`
}

type UpdateEnderecoInput struct {
	Logradouro string `json:"logradouro" validate:"required"`
	Numero     int    `json:"numero"`
	Bairro     string `json:"bairro"`
}

type ReadEnderecoOutput struct {
	ID         uint   `json:"id"`
	Logradouro string `json:"logradouro"`
	Numero     int    `json:"numero"`
	Bairro     string `json:"bairro"`
}
