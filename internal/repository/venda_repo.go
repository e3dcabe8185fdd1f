package repository

import (
	"context"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)

	// Relatórios
	SumTotal(ctx context.Context) (decimal.Decimal, error)
	TotaisPorMes(ctx context.Context, ano int) ([12]decimal.Decimal, error)
	ProdutosSemVendaDesde(ctx context.Context, desde time.Time) ([]model.Produto, error)

	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Pagamento").Preload("Itens.Produto").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Venda{})
	if filter.Data != "" {
		q = q.Where("DATE(data_compra) = ?", filter.Data)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	var vendas []model.Venda
	err := q.Preload("Cliente").Preload("Pagamento").Preload("Itens.Produto").
		Order("data_compra DESC").Offset(offset).Limit(limit).Find(&vendas).Error
	return vendas, total, err
}

func (r *vendaRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("COALESCE(SUM(valor_total), 0)").Scan(&total).Error
	return total, err
}

// TotaisPorMes aggregates sale totals per month of the given year.
func (r *vendaRepo) TotaisPorMes(ctx context.Context, ano int) ([12]decimal.Decimal, error) {
	var totais [12]decimal.Decimal
	for i := range totais {
		totais[i] = decimal.Zero
	}

	rows := []struct {
		Mes   int
		Total decimal.Decimal
	}{}
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("EXTRACT(MONTH FROM data_compra)::int AS mes, COALESCE(SUM(valor_total), 0) AS total").
		Where("EXTRACT(YEAR FROM data_compra) = ?", ano).
		Group("mes").
		Scan(&rows).Error
	if err != nil {
		return totais, err
	}
	for _, row := range rows {
		if row.Mes >= 1 && row.Mes <= 12 {
			totais[row.Mes-1] = row.Total
		}
	}
	return totais, nil
}

// ProdutosSemVendaDesde returns products with no committed sale line since
// the given instant ("produtos parados" on the dashboard).
func (r *vendaRepo) ProdutosSemVendaDesde(ctx context.Context, desde time.Time) ([]model.Produto, error) {
	var produtos []model.Produto
	sub := r.db.Model(&model.ItemVenda{}).
		Select("DISTINCT itens_venda.produto_id").
		Joins("JOIN vendas ON vendas.id = itens_venda.venda_id").
		Where("vendas.data_compra >= ?", desde)
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Preload("Estoque").
		Order("nome ASC").
		Find(&produtos).Error
	return produtos, err
}
