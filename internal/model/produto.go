package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto always carries exactly one Estoque row, created in the same
// transaction as the product itself.
type Produto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string          `gorm:"index;not null"`
	Descricao   *string         `gorm:"type:text"`
	Preco       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	// PrecoPromocional overrides Preco at sale time when set.
	PrecoPromocional *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CategoriaID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	FornecedorID     *uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Categoria  *Categoria  `gorm:"foreignKey:CategoriaID"`
	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
	Estoque    *Estoque    `gorm:"foreignKey:ProdutoID"`
}

func (Produto) TableName() string { return "produtos" }
