package model

import (
	"time"

	"github.com/google/uuid"
)

// Fornecedor represents a supplier with commercial data.
type Fornecedor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome       string    `gorm:"not null"`
	Email      *string   `gorm:"type:varchar(200)"`
	CNPJ       string    `gorm:"column:cnpj;uniqueIndex;not null"`
	Telefone   *string   `gorm:"type:varchar(20)"`
	EnderecoID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Endereco *Endereco `gorm:"foreignKey:EnderecoID"`
	Produtos []Produto `gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
