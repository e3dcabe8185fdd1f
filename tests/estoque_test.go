package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEstoqueFixture() (*stubProdutoRepo, *stubEstoqueRepo, *stubMovimentacaoRepo, service.EstoqueService) {
	produtos := newStubProdutoRepo()
	estoques := newStubEstoqueRepo(produtos)
	movimentos := newStubMovimentacaoRepo()
	svc := service.NewEstoqueService(estoques, produtos, movimentos, nil) // nil dispatcher: alertas são melhor esforço
	return produtos, estoques, movimentos, svc
}

func TestDefinirEstoqueRegistraAjusteManual(t *testing.T) {
	produtos, estoques, movimentos, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "Teclado Mecânico", 250.00, 7, 2)
	usuarioID := uuid.New()

	resp, err := svc.DefinirEstoque(context.Background(), &usuarioID, p.ID, dto.DefinirEstoqueRequest{
		Quantidade: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Quantidade)
	assert.Equal(t, 3, estoques.estoques[p.ID].Quantidade)

	movs := movimentos.porProduto(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovAjusteManual, movs[0].Tipo)
	assert.Equal(t, -4, movs[0].Quantidade)
	require.NotNil(t, movs[0].UsuarioID)
	assert.Equal(t, usuarioID, *movs[0].UsuarioID)
}

func TestDefinirEstoqueComObservacao(t *testing.T) {
	produtos, estoques, movimentos, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "Mouse Sem Fio", 90.00, 10, 2)
	usuarioID := uuid.New()
	obs := "Contagem física do inventário"

	_, err := svc.DefinirEstoque(context.Background(), &usuarioID, p.ID, dto.DefinirEstoqueRequest{
		Quantidade: 12,
		Observacao: &obs,
	})
	require.NoError(t, err)

	movs := movimentos.porProduto(p.ID)
	require.Len(t, movs, 1)
	assert.Equal(t, 2, movs[0].Quantidade)
	assert.Equal(t, obs, movs[0].Observacao)
}

func TestDefinirEstoqueSemMudancaNaoGeraMovimento(t *testing.T) {
	produtos, estoques, movimentos, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "Monitor 24\"", 900.00, 5, 1)
	usuarioID := uuid.New()

	resp, err := svc.DefinirEstoque(context.Background(), &usuarioID, p.ID, dto.DefinirEstoqueRequest{
		Quantidade: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Quantidade)
	assert.Empty(t, movimentos.porProduto(p.ID))
}

func TestDefinirEstoqueProdutoInexistente(t *testing.T) {
	_, _, _, svc := newEstoqueFixture()
	usuarioID := uuid.New()

	_, err := svc.DefinirEstoque(context.Background(), &usuarioID, uuid.New(), dto.DefinirEstoqueRequest{
		Quantidade: 10,
	})
	assert.ErrorIs(t, err, service.ErrProdutoNaoEncontrado)
}

func TestAjusteNuncaDeixaEstoqueNegativo(t *testing.T) {
	produtos, estoques, movimentos, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "Cabo HDMI", 35.00, 4, 1)
	usuarioID := uuid.New()

	_, err := svc.AjustarEstoqueTx(context.Background(), nil, p.ID, -10, model.MovSaida, &usuarioID, "Venda")

	var insuf *service.EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, "Cabo HDMI", insuf.Produto)
	assert.Equal(t, 4, insuf.Disponivel)
	assert.Equal(t, 10, insuf.Solicitado)

	// Nada muda quando o ajuste é rejeitado.
	assert.Equal(t, 4, estoques.estoques[p.ID].Quantidade)
	assert.Empty(t, movimentos.porProduto(p.ID))
}

func TestAjusteAteZeroEhPermitido(t *testing.T) {
	produtos, estoques, _, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "Pilha AA", 8.00, 6, 2)
	usuarioID := uuid.New()

	novo, err := svc.AjustarEstoqueTx(context.Background(), nil, p.ID, -6, model.MovSaida, &usuarioID, "Venda")
	require.NoError(t, err)
	assert.Equal(t, 0, novo)
	assert.Equal(t, 0, estoques.estoques[p.ID].Quantidade)
}

// A quantidade em estoque é sempre a soma dos deltas assinados do ledger.
func TestLedgerSomaIgualQuantidadeEmEstoque(t *testing.T) {
	produtos, estoques, movimentos, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "SSD 1TB", 420.00, 0, 3)
	usuarioID := uuid.New()
	ctx := context.Background()

	_, err := svc.AjustarEstoqueTx(ctx, nil, p.ID, 20, model.MovEntrada, &usuarioID, "Recebimento")
	require.NoError(t, err)
	_, err = svc.AjustarEstoqueTx(ctx, nil, p.ID, -7, model.MovSaida, &usuarioID, "Venda")
	require.NoError(t, err)
	_, err = svc.AjustarEstoqueTx(ctx, nil, p.ID, -2, model.MovAjusteManual, &usuarioID, "Quebra")
	require.NoError(t, err)

	soma := 0
	for _, m := range movimentos.porProduto(p.ID) {
		soma += m.Quantidade
	}
	assert.Equal(t, soma, estoques.estoques[p.ID].Quantidade)
	assert.Equal(t, 11, estoques.estoques[p.ID].Quantidade)
}

func TestListarAlertasAbaixoDoMinimo(t *testing.T) {
	produtos, estoques, _, svc := newEstoqueFixture()
	seedProdutoComEstoque(produtos, estoques, "Produto OK", 10.00, 50, 5)
	baixo := seedProdutoComEstoque(produtos, estoques, "Produto Baixo", 10.00, 3, 5)
	zerado := seedProdutoComEstoque(produtos, estoques, "Produto Zerado", 10.00, 0, 10)

	alertas, err := svc.ListarAlertas(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 2)

	ids := []string{alertas[0].ProdutoID, alertas[1].ProdutoID}
	assert.Contains(t, ids, baixo.ID.String())
	assert.Contains(t, ids, zerado.ID.String())
}

func TestListarMovimentacoesFiltraPorTipo(t *testing.T) {
	produtos, estoques, _, svc := newEstoqueFixture()
	p := seedProdutoComEstoque(produtos, estoques, "Fone Bluetooth", 150.00, 10, 2)
	usuarioID := uuid.New()
	ctx := context.Background()

	_, err := svc.AjustarEstoqueTx(ctx, nil, p.ID, 5, model.MovEntrada, &usuarioID, "Recebimento")
	require.NoError(t, err)
	_, err = svc.AjustarEstoqueTx(ctx, nil, p.ID, -3, model.MovSaida, &usuarioID, "Venda")
	require.NoError(t, err)

	resp, err := svc.ListarMovimentacoes(ctx, dto.MovimentacaoFilter{Tipo: model.MovSaida})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, -3, resp.Data[0].Quantidade)
}

func TestConsultarPorProdutoInexistente(t *testing.T) {
	_, _, _, svc := newEstoqueFixture()

	_, err := svc.ConsultarPorProduto(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, service.ErrProdutoNaoEncontrado))
}
