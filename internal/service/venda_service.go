package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	RegistrarVenda(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error)
	ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
}

type vendaService struct {
	repo          repository.VendaRepository
	clienteRepo   repository.ClienteRepository
	pagamentoRepo repository.PagamentoRepository
	produtoRepo   repository.ProdutoRepository
	estoque       EstoqueService
}

func NewVendaService(
	repo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	pagamentoRepo repository.PagamentoRepository,
	produtoRepo repository.ProdutoRepository,
	estoque EstoqueService,
) VendaService {
	return &vendaService{
		repo:          repo,
		clienteRepo:   clienteRepo,
		pagamentoRepo: pagamentoRepo,
		produtoRepo:   produtoRepo,
		estoque:       estoque,
	}
}

// RegistrarVenda:
//  1. resolve cliente, pagamento e produtos (pré-validação, fora da tx)
//  2. congela o preço unitário (promocional quando definido)
//  3. BEGIN TX: cria venda + itens, baixa estoque linha a linha via
//     AjustarEstoqueTx (re-checagem sob FOR UPDATE)
//  4. COMMIT — qualquer erro desfaz tudo
//  5. (pós-commit) dispara alertas de estoque baixo
func (s *vendaService) RegistrarVenda(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	pagamentoID, err := uuid.Parse(req.PagamentoID)
	if err != nil {
		return nil, fmt.Errorf("pagamento_id inválido: %w", err)
	}

	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	pagamento, err := s.pagamentoRepo.FindByID(ctx, pagamentoID)
	if err != nil {
		return nil, errors.New("forma de pagamento não encontrada")
	}

	type resolvedItem struct {
		produtoID  uuid.UUID
		nome       string
		preco      decimal.Decimal
		quantidade int
	}

	var resolved []resolvedItem
	total := decimal.Zero
	for _, item := range req.Itens {
		if item.Quantidade <= 0 {
			continue
		}
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		p, err := s.produtoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("produto %s: %w", item.ProdutoID, ErrProdutoNaoEncontrado)
		}
		if p.Estoque == nil {
			return nil, fmt.Errorf("produto %q sem registro de estoque", p.Nome)
		}
		if p.Estoque.Quantidade < item.Quantidade {
			return nil, &EstoqueInsuficienteError{
				Produto:    p.Nome,
				Disponivel: p.Estoque.Quantidade,
				Solicitado: item.Quantidade,
			}
		}

		// Preço congelado no item: promocional vence quando definido.
		preco := p.Preco
		if p.PrecoPromocional != nil {
			preco = *p.PrecoPromocional
		}
		total = total.Add(preco.Mul(decimal.NewFromInt(int64(item.Quantidade))))
		resolved = append(resolved, resolvedItem{
			produtoID:  pid,
			nome:       p.Nome,
			preco:      preco,
			quantidade: item.Quantidade,
		})
	}
	if len(resolved) == 0 {
		return nil, errors.New("adicione ao menos um produto com quantidade maior que zero")
	}

	// Linhas sempre travadas em ordem crescente de produto; vendas
	// concorrentes com produtos em comum não podem se deadlockar.
	sort.Slice(resolved, func(i, j int) bool {
		return bytes.Compare(resolved[i].produtoID[:], resolved[j].produtoID[:]) < 0
	})

	var venda model.Venda
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venda = model.Venda{
			DataCompra:  time.Now().UTC(),
			ValorTotal:  total,
			ClienteID:   clienteID,
			PagamentoID: pagamentoID,
		}
		for _, r := range resolved {
			venda.Itens = append(venda.Itens, model.ItemVenda{
				ProdutoID:     r.produtoID,
				Quantidade:    r.quantidade,
				PrecoUnitario: r.preco,
			})
		}
		if err := s.repo.CreateTx(tx, &venda); err != nil {
			return err
		}

		for _, r := range resolved {
			observacao := fmt.Sprintf("Venda #%s", venda.ID)
			if _, err := s.estoque.AjustarEstoqueTx(ctx, tx, r.produtoID, -r.quantidade, model.MovSaida, &usuarioID, observacao); err != nil {
				return fmt.Errorf("erro ao baixar estoque de %q: %w", r.nome, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Pós-commit: alertas de estoque baixo (melhor esforço).
	ids := make([]uuid.UUID, 0, len(resolved))
	for _, r := range resolved {
		ids = append(ids, r.produtoID)
	}
	s.estoque.DispararAlertas(ctx, ids)

	resp := &dto.VendaResponse{
		ID:         venda.ID.String(),
		Cliente:    cliente.Nome,
		Pagamento:  pagamento.Tipo,
		ValorTotal: venda.ValorTotal,
		DataCompra: venda.DataCompra.Format(time.RFC3339),
	}
	for _, r := range resolved {
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			Produto:       r.nome,
			Quantidade:    r.quantidade,
			PrecoUnitario: r.preco,
			Subtotal:      r.preco.Mul(decimal.NewFromInt(int64(r.quantidade))),
		})
	}
	return resp, nil
}

func (s *vendaService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("venda não encontrada")
	}
	return vendaToResponse(venda), nil
}

func (s *vendaService) ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		items = append(items, *vendaToResponse(&v))
	}
	return &dto.VendaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	resp := &dto.VendaResponse{
		ID:         v.ID.String(),
		ValorTotal: v.ValorTotal,
		DataCompra: v.DataCompra.Format(time.RFC3339),
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nome
	}
	if v.Pagamento != nil {
		resp.Pagamento = v.Pagamento.Tipo
	}
	for _, item := range v.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			Produto:       nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade))),
		})
	}
	return resp
}
