package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is created on demand during sale entry.
// CPF is stored digits-only after checksum validation.
type Cliente struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome       string    `gorm:"not null"`
	CPF        string    `gorm:"column:cpf;type:varchar(14);uniqueIndex;not null"`
	Telefone   *string   `gorm:"type:varchar(20)"`
	EnderecoID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Endereco *Endereco `gorm:"foreignKey:EnderecoID"`
	Vendas   []Venda   `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }
