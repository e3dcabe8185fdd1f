package service

import (
	"context"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"
)

type CategoriaService interface {
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)

	CriarPagamento(ctx context.Context, req dto.CriarPagamentoRequest) (*dto.PagamentoResponse, error)
	ListarPagamentos(ctx context.Context) ([]dto.PagamentoResponse, error)
}

type categoriaService struct {
	catRepo repository.CategoriaRepository
	pagRepo repository.PagamentoRepository
}

func NewCategoriaService(catRepo repository.CategoriaRepository, pagRepo repository.PagamentoRepository) CategoriaService {
	return &categoriaService{catRepo: catRepo, pagRepo: pagRepo}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := model.Categoria{Nome: req.Nome}
	if err := s.catRepo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID.String(), Nome: c.Nome}, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.catRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID.String(), Nome: c.Nome})
	}
	return out, nil
}

func (s *categoriaService) CriarPagamento(ctx context.Context, req dto.CriarPagamentoRequest) (*dto.PagamentoResponse, error) {
	parcela := req.Parcela
	if parcela < 1 {
		parcela = 1
	}
	p := model.Pagamento{Tipo: req.Tipo, Parcela: parcela}
	if err := s.pagRepo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &dto.PagamentoResponse{ID: p.ID.String(), Tipo: p.Tipo, Parcela: p.Parcela}, nil
}

func (s *categoriaService) ListarPagamentos(ctx context.Context) ([]dto.PagamentoResponse, error) {
	pagamentos, err := s.pagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagamentoResponse, 0, len(pagamentos))
	for _, p := range pagamentos {
		out = append(out, dto.PagamentoResponse{ID: p.ID.String(), Tipo: p.Tipo, Parcela: p.Parcela})
	}
	return out, nil
}
