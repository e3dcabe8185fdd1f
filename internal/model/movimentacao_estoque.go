package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de movimentação. Os valores gravados preservam a grafia do domínio.
const (
	MovEntrada      = "ENTRADA"
	MovSaida        = "SAÍDA"
	MovAjusteManual = "AJUSTE MANUAL"
)

// MovimentacaoEstoque registra cada mudança de quantidade de um produto.
// Linhas são imutáveis — nunca alteradas ou removidas (trilha de auditoria).
// Quantidade carries the signed delta: positive inbound, negative outbound.
type MovimentacaoEstoque struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	UsuarioID  *uuid.UUID `gorm:"type:uuid"`
	Tipo       string     `gorm:"type:varchar(20);not null"`
	Quantidade int        `gorm:"not null"`
	Observacao string
	CreatedAt  time.Time `gorm:"index"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (MovimentacaoEstoque) TableName() string { return "movimentacoes_estoque" }
