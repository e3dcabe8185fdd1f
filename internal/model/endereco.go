package model

import "github.com/google/uuid"

// Endereco is shared by clientes and fornecedores.
type Endereco struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CEP         string    `gorm:"type:varchar(10);not null"`
	Numero      string    `gorm:"type:varchar(20);not null"`
	Complemento *string   `gorm:"type:varchar(100)"`
}

func (Endereco) TableName() string { return "enderecos" }
