package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	estoqueCacheKey = "relatorio:estoque_atual"
	estoqueCacheTTL = 60 * time.Second
	estoquePageSize = 200

	// Products with no sale line in this window count as "parados".
	paradoJanela = 90 * 24 * time.Hour
)

type RelatorioService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	VendasPorMes(ctx context.Context, ano int) (*dto.VendasPorMesResponse, error)
	EstoqueAtual(ctx context.Context) (*dto.EstoqueAtualResponse, error)
}

type relatorioService struct {
	vendaRepo   repository.VendaRepository
	estoqueRepo repository.EstoqueRepository
	produtoRepo repository.ProdutoRepository
	rdb         *redis.Client
}

func NewRelatorioService(
	vendaRepo repository.VendaRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	rdb *redis.Client,
) RelatorioService {
	return &relatorioService{
		vendaRepo:   vendaRepo,
		estoqueRepo: estoqueRepo,
		produtoRepo: produtoRepo,
		rdb:         rdb,
	}
}

func (s *relatorioService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalVendas, err := s.vendaRepo.SumTotal(ctx)
	if err != nil {
		return nil, err
	}
	totalItens, err := s.estoqueRepo.SumQuantidade(ctx)
	if err != nil {
		return nil, err
	}
	parados, err := s.vendaRepo.ProdutosSemVendaDesde(ctx, time.Now().UTC().Add(-paradoJanela))
	if err != nil {
		return nil, err
	}
	abaixo, err := s.estoqueRepo.ListAbaixoDoMinimo(ctx)
	if err != nil {
		return nil, err
	}

	paradosResp := make([]dto.ProdutoResponse, 0, len(parados))
	for i := range parados {
		paradosResp = append(paradosResp, *produtoToResponse(&parados[i]))
	}
	return &dto.DashboardResponse{
		TotalVendas:          totalVendas,
		TotalItensEstoque:    totalItens,
		ProdutosParados:      paradosResp,
		ProdutosAbaixoMinimo: len(abaixo),
	}, nil
}

func (s *relatorioService) VendasPorMes(ctx context.Context, ano int) (*dto.VendasPorMesResponse, error) {
	if ano == 0 {
		ano = time.Now().UTC().Year()
	}
	totais, err := s.vendaRepo.TotaisPorMes(ctx, ano)
	if err != nil {
		return nil, err
	}
	return &dto.VendasPorMesResponse{Ano: ano, Mensal: totais[:]}, nil
}

// EstoqueAtual is read on every dashboard refresh, so the snapshot sits in
// Redis for a minute. Cache misses fall through to the database.
func (s *relatorioService) EstoqueAtual(ctx context.Context) (*dto.EstoqueAtualResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, estoqueCacheKey).Bytes(); err == nil {
			var resp dto.EstoqueAtualResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	resp := &dto.EstoqueAtualResponse{Itens: []dto.EstoqueAtualItem{}}
	for page := 1; ; page++ {
		produtos, _, err := s.produtoRepo.List(ctx, dto.ProdutoFilter{Page: page, Limit: estoquePageSize})
		if err != nil {
			return nil, err
		}
		for i := range produtos {
			item := dto.EstoqueAtualItem{Produto: produtos[i].Nome}
			if produtos[i].Estoque != nil {
				item.Quantidade = produtos[i].Estoque.Quantidade
			}
			resp.Itens = append(resp.Itens, item)
		}
		if len(produtos) < estoquePageSize {
			break
		}
	}

	// Best effort, ignore errors.
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), estoqueCacheKey, b, estoqueCacheTTL).Err()
		}
	}
	return resp, nil
}
