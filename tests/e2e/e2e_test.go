//go:build integration

package e2e

// Testes de integração contra Postgres real via testcontainers.
// Rode com: go test -tags integration ./tests/e2e/... -v
//
// O que só um banco de verdade consegue provar:
//   - uma venda que falha no meio da transação não deixa NENHUMA linha
//     (venda, itens, movimentação) nem altera o estoque
//   - vendas concorrentes sobre o mesmo produto serializam no FOR UPDATE
//     da linha de estoque: exatamente uma leva as últimas unidades
//   - recebimento e venda concorrentes não perdem atualização

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/infra"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// ── Setup ────────────────────────────────────────────────────────────────────

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("estoque_test"),
		tcPostgres.WithUsername("estoque"),
		tcPostgres.WithPassword("estoque"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	return db
}

type baseIDs struct {
	usuarioID    uuid.UUID
	clienteID    uuid.UUID
	pagamentoID  uuid.UUID
	categoriaID  uuid.UUID
	fornecedorID uuid.UUID
}

func seedBase(t *testing.T, db *gorm.DB) baseIDs {
	t.Helper()
	ids := baseIDs{
		usuarioID:    uuid.New(),
		clienteID:    uuid.New(),
		pagamentoID:  uuid.New(),
		categoriaID:  uuid.New(),
		fornecedorID: uuid.New(),
	}
	enderecoCliente := &model.Endereco{ID: uuid.New(), CEP: "01310-100", Numero: "1578"}
	enderecoForn := &model.Endereco{ID: uuid.New(), CEP: "04538-133", Numero: "3477"}
	require.NoError(t, db.Create(enderecoCliente).Error)
	require.NoError(t, db.Create(enderecoForn).Error)
	require.NoError(t, db.Create(&model.Usuario{
		ID: ids.usuarioID, Login: "vendedor.teste", SenhaHash: "x", Cargo: model.CargoVendedor,
	}).Error)
	require.NoError(t, db.Create(&model.Cliente{
		ID: ids.clienteID, Nome: "Cliente Teste", CPF: "52998224725", EnderecoID: enderecoCliente.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Pagamento{
		ID: ids.pagamentoID, Tipo: "PIX", Parcela: 1,
	}).Error)
	require.NoError(t, db.Create(&model.Categoria{
		ID: ids.categoriaID, Nome: "Papelaria",
	}).Error)
	require.NoError(t, db.Create(&model.Fornecedor{
		ID: ids.fornecedorID, Nome: "Fornecedor Teste", CNPJ: "11222333000181", EnderecoID: enderecoForn.ID,
	}).Error)
	return ids
}

func seedProduto(t *testing.T, db *gorm.DB, ids baseIDs, nome string, preco float64, quantidade int) uuid.UUID {
	t.Helper()
	p := &model.Produto{
		ID:          uuid.New(),
		Nome:        nome,
		Preco:       decimal.NewFromFloat(preco),
		CategoriaID: ids.categoriaID,
	}
	require.NoError(t, db.Create(p).Error)
	require.NoError(t, db.Create(&model.Estoque{
		ID: uuid.New(), ProdutoID: p.ID, Quantidade: quantidade, Minimo: 1,
	}).Error)
	return p.ID
}

func novoVendaService(db *gorm.DB, movRepo repository.MovimentacaoRepository) service.VendaService {
	estoqueSvc := service.NewEstoqueService(
		repository.NewEstoqueRepository(db),
		repository.NewProdutoRepository(db),
		movRepo,
		nil, // sem dispatcher: alertas fora de escopo aqui
	)
	return service.NewVendaService(
		repository.NewVendaRepository(db),
		repository.NewClienteRepository(db),
		repository.NewPagamentoRepository(db),
		repository.NewProdutoRepository(db),
		estoqueSvc,
	)
}

func contar(t *testing.T, db *gorm.DB, modelo any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(modelo).Count(&n).Error)
	return n
}

func quantidadeEmEstoque(t *testing.T, db *gorm.DB, produtoID uuid.UUID) int {
	t.Helper()
	var e model.Estoque
	require.NoError(t, db.Where("produto_id = ?", produtoID).First(&e).Error)
	return e.Quantidade
}

// movRepoComFalha delega ao repositório real, mas falha ao gravar a
// movimentação — depois que a venda e a baixa de estoque já rodaram
// dentro da mesma transação.
type movRepoComFalha struct {
	repository.MovimentacaoRepository
}

var errGravacaoMovimentacao = errors.New("falha simulada ao gravar movimentação")

func (r *movRepoComFalha) CreateTx(_ *gorm.DB, _ *model.MovimentacaoEstoque) error {
	return errGravacaoMovimentacao
}

// ── Testes ───────────────────────────────────────────────────────────────────

// Uma falha após a criação da venda e a baixa do estoque desfaz a transação
// inteira: nenhuma venda, nenhum item, nenhuma movimentação, estoque intacto.
func TestVendaDesfeitaAposFalhaNaTransacao(t *testing.T) {
	db := setupDB(t)
	ids := seedBase(t, db)
	produtoID := seedProduto(t, db, ids, "Caderno Espiral", 25.00, 10)

	movRepo := &movRepoComFalha{repository.NewMovimentacaoRepository(db)}
	svc := novoVendaService(db, movRepo)

	_, err := svc.RegistrarVenda(context.Background(), ids.usuarioID, dto.RegistrarVendaRequest{
		ClienteID:   ids.clienteID.String(),
		PagamentoID: ids.pagamentoID.String(),
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoID.String(), Quantidade: 3},
		},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, errGravacaoMovimentacao)

	assert.EqualValues(t, 0, contar(t, db, &model.Venda{}))
	assert.EqualValues(t, 0, contar(t, db, &model.ItemVenda{}))
	assert.EqualValues(t, 0, contar(t, db, &model.MovimentacaoEstoque{}))
	assert.Equal(t, 10, quantidadeEmEstoque(t, db, produtoID))
}

// Duas vendas concorrentes disputando as últimas unidades serializam no
// lock da linha de estoque: exatamente uma commita; a perdedora é desfeita
// por inteiro, inclusive a venda que ela já havia inserido.
func TestVendasConcorrentesSerializamNoEstoque(t *testing.T) {
	db := setupDB(t)
	ids := seedBase(t, db)
	produtoID := seedProduto(t, db, ids, "Resma Papel A4", 32.00, 5)

	svc := novoVendaService(db, repository.NewMovimentacaoRepository(db))
	req := dto.RegistrarVendaRequest{
		ClienteID:   ids.clienteID.String(),
		PagamentoID: ids.pagamentoID.String(),
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoID.String(), Quantidade: 4},
		},
	}

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.RegistrarVenda(context.Background(), ids.usuarioID, req)
		}(i)
	}
	wg.Wait()

	sucessos, insuficientes := 0, 0
	for _, err := range errs {
		if err == nil {
			sucessos++
			continue
		}
		var insErr *service.EstoqueInsuficienteError
		require.ErrorAs(t, err, &insErr)
		assert.Equal(t, 4, insErr.Solicitado)
		insuficientes++
	}
	assert.Equal(t, 1, sucessos)
	assert.Equal(t, 1, insuficientes)

	assert.Equal(t, 1, quantidadeEmEstoque(t, db, produtoID))
	assert.EqualValues(t, 1, contar(t, db, &model.Venda{}))
	assert.EqualValues(t, 1, contar(t, db, &model.ItemVenda{}))
	assert.EqualValues(t, 1, contar(t, db, &model.MovimentacaoEstoque{}))
}

// Recebimento de pedido e venda concorrentes sobre o mesmo produto não
// perdem atualização: o saldo final reflete os dois deltas e o razão fecha
// com a quantidade em estoque.
func TestRecebimentoEVendaConcorrentesNaoPerdemAtualizacao(t *testing.T) {
	db := setupDB(t)
	ids := seedBase(t, db)
	produtoID := seedProduto(t, db, ids, "Grampeador", 18.50, 5)

	movRepo := repository.NewMovimentacaoRepository(db)
	vendaSvc := novoVendaService(db, movRepo)
	estoqueSvc := service.NewEstoqueService(
		repository.NewEstoqueRepository(db),
		repository.NewProdutoRepository(db),
		movRepo,
		nil,
	)
	pedidoSvc := service.NewPedidoService(
		repository.NewPedidoRepository(db),
		repository.NewFornecedorRepository(db),
		repository.NewProdutoRepository(db),
		repository.NewMensagemRepository(db),
		estoqueSvc,
	)

	pedido, err := pedidoSvc.CriarPedido(context.Background(), ids.usuarioID, dto.CriarPedidoRequest{
		FornecedorID: ids.fornecedorID.String(),
		Itens: []dto.ItemPedidoRequest{
			{ProdutoID: produtoID.String(), Quantidade: 20},
		},
	})
	require.NoError(t, err)
	pedidoID, err := uuid.Parse(pedido.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var errVenda, errRecebimento error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errRecebimento = pedidoSvc.ReceberPedido(context.Background(), ids.usuarioID, pedidoID, dto.ReceberPedidoRequest{})
	}()
	go func() {
		defer wg.Done()
		_, errVenda = vendaSvc.RegistrarVenda(context.Background(), ids.usuarioID, dto.RegistrarVendaRequest{
			ClienteID:   ids.clienteID.String(),
			PagamentoID: ids.pagamentoID.String(),
			Itens: []dto.ItemVendaRequest{
				{ProdutoID: produtoID.String(), Quantidade: 4},
			},
		})
	}()
	wg.Wait()

	require.NoError(t, errRecebimento)
	require.NoError(t, errVenda)

	// 5 + 20 − 4 = 21, independentemente da ordem de commit.
	assert.Equal(t, 21, quantidadeEmEstoque(t, db, produtoID))

	var soma int64
	require.NoError(t, db.Model(&model.MovimentacaoEstoque{}).
		Select("COALESCE(SUM(quantidade), 0)").Scan(&soma).Error)
	assert.EqualValues(t, 16, soma)
	assert.EqualValues(t, 2, contar(t, db, &model.MovimentacaoEstoque{}))
}
