package repository

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	List(ctx context.Context) ([]model.Categoria, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&categorias).Error
	return categorias, err
}

// PagamentoRepository lists the explicit payment methods a sale must name.
type PagamentoRepository interface {
	Create(ctx context.Context, p *model.Pagamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pagamento, error)
	List(ctx context.Context) ([]model.Pagamento, error)
}

type pagamentoRepo struct{ db *gorm.DB }

func NewPagamentoRepository(db *gorm.DB) PagamentoRepository { return &pagamentoRepo{db: db} }

func (r *pagamentoRepo) Create(ctx context.Context, p *model.Pagamento) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pagamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pagamento, error) {
	var p model.Pagamento
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pagamentoRepo) List(ctx context.Context) ([]model.Pagamento, error) {
	var pagamentos []model.Pagamento
	err := r.db.WithContext(ctx).Order("tipo ASC").Find(&pagamentos).Error
	return pagamentos, err
}
