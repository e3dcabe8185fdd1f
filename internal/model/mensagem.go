package model

import (
	"time"

	"github.com/google/uuid"
)

const MensagemLogSistema = "LOG do Sistema"

// Mensagem is a human-readable audit/notification log tied to a supplier
// and/or product, written on order-creation and alert events.
type Mensagem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FornecedorID *uuid.UUID `gorm:"type:uuid;index"`
	ProdutoID    *uuid.UUID `gorm:"type:uuid"`
	Conteudo     string     `gorm:"type:varchar(2000);not null"`
	DataEnvio    time.Time  `gorm:"not null;index"`
	Status       string     `gorm:"type:varchar(50);not null;default:'pendente'"`

	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
	Produto    *Produto    `gorm:"foreignKey:ProdutoID"`
}

func (Mensagem) TableName() string { return "mensagens" }
