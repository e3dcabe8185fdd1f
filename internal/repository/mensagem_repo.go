package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"gorm.io/gorm"
)

type MensagemRepository interface {
	Create(ctx context.Context, m *model.Mensagem) error
	CreateTx(tx *gorm.DB, m *model.Mensagem) error
	List(ctx context.Context) ([]model.Mensagem, error)
}

type mensagemRepo struct{ db *gorm.DB }

func NewMensagemRepository(db *gorm.DB) MensagemRepository { return &mensagemRepo{db: db} }

func (r *mensagemRepo) Create(ctx context.Context, m *model.Mensagem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mensagemRepo) CreateTx(tx *gorm.DB, m *model.Mensagem) error {
	return tx.Create(m).Error
}

func (r *mensagemRepo) List(ctx context.Context) ([]model.Mensagem, error) {
	var msgs []model.Mensagem
	err := r.db.WithContext(ctx).
		Preload("Fornecedor").Preload("Produto").
		Order("data_envio DESC").Find(&msgs).Error
	return msgs, err
}
