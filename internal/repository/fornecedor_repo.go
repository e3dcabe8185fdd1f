package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FornecedorRepository interface {
	CreateTx(tx *gorm.DB, f *model.Fornecedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error)
	List(ctx context.Context) ([]model.Fornecedor, error)

	DB() *gorm.DB
}

type fornecedorRepo struct{ db *gorm.DB }

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository { return &fornecedorRepo{db: db} }

func (r *fornecedorRepo) DB() *gorm.DB { return r.db }

func (r *fornecedorRepo) CreateTx(tx *gorm.DB, f *model.Fornecedor) error {
	return tx.Create(f).Error
}

func (r *fornecedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).Preload("Endereco").First(&f, "id = ?", id).Error
	return &f, err
}

func (r *fornecedorRepo) List(ctx context.Context) ([]model.Fornecedor, error) {
	var fornecedores []model.Fornecedor
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&fornecedores).Error
	return fornecedores, err
}
