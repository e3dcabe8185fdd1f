package tests

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stubs em memória compartilhados pelos testes de serviço. DB() devolve nil,
// então runTx chama o callback com tx == nil e os serviços rodam sem banco.

// ── ProdutoRepository ────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) CreateTx(_ *gorm.DB, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProdutoRepo) List(_ context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	result := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nome < result[j].Nome })
	total := int64(len(result))
	if filter.Limit > 0 {
		start := (filter.Page - 1) * filter.Limit
		if start < 0 {
			start = 0
		}
		if start > len(result) {
			start = len(result)
		}
		end := start + filter.Limit
		if end > len(result) {
			end = len(result)
		}
		result = result[start:end]
	}
	return result, total, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	if _, ok := r.produtos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── EstoqueRepository ────────────────────────────────────────────────────────

type stubEstoqueRepo struct {
	estoques map[uuid.UUID]*model.Estoque // keyed by ProdutoID
	produtos *stubProdutoRepo
}

func newStubEstoqueRepo(produtos *stubProdutoRepo) *stubEstoqueRepo {
	return &stubEstoqueRepo{
		estoques: make(map[uuid.UUID]*model.Estoque),
		produtos: produtos,
	}
}

func (r *stubEstoqueRepo) CreateTx(_ *gorm.DB, e *model.Estoque) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.estoques[e.ProdutoID] = e
	return nil
}

func (r *stubEstoqueRepo) FindByProdutoID(_ context.Context, produtoID uuid.UUID) (*model.Estoque, error) {
	e, ok := r.estoques[produtoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEstoqueRepo) FindByProdutoIDForUpdate(_ *gorm.DB, produtoID uuid.UUID) (*model.Estoque, error) {
	return r.FindByProdutoID(context.Background(), produtoID)
}

func (r *stubEstoqueRepo) SaveTx(_ *gorm.DB, e *model.Estoque) error {
	r.estoques[e.ProdutoID] = e
	return nil
}

func (r *stubEstoqueRepo) UpdateLastAlert(_ context.Context, produtoID uuid.UUID) error {
	e, ok := r.estoques[produtoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now().UTC()
	e.LastAlert = &now
	return nil
}

func (r *stubEstoqueRepo) ListAbaixoDoMinimo(_ context.Context) ([]model.Produto, error) {
	var result []model.Produto
	for produtoID, e := range r.estoques {
		if e.Quantidade > e.Minimo {
			continue
		}
		p, ok := r.produtos.produtos[produtoID]
		if !ok {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubEstoqueRepo) SumQuantidade(_ context.Context) (int64, error) {
	var total int64
	for _, e := range r.estoques {
		total += int64(e.Quantidade)
	}
	return total, nil
}

func (r *stubEstoqueRepo) DB() *gorm.DB { return nil }

var _ repository.EstoqueRepository = (*stubEstoqueRepo)(nil)

// ── MovimentacaoRepository ───────────────────────────────────────────────────

type stubMovimentacaoRepo struct {
	movimentos []*model.MovimentacaoEstoque
}

func newStubMovimentacaoRepo() *stubMovimentacaoRepo {
	return &stubMovimentacaoRepo{}
}

func (r *stubMovimentacaoRepo) CreateTx(_ *gorm.DB, m *model.MovimentacaoEstoque) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	r.movimentos = append(r.movimentos, m)
	return nil
}

func (r *stubMovimentacaoRepo) List(_ context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error) {
	var result []model.MovimentacaoEstoque
	for _, m := range r.movimentos {
		if filter.ProdutoID != "" && m.ProdutoID.String() != filter.ProdutoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		result = append(result, *m)
	}
	return result, int64(len(result)), nil
}

// porProduto devolve os movimentos de um produto na ordem de gravação.
func (r *stubMovimentacaoRepo) porProduto(produtoID uuid.UUID) []*model.MovimentacaoEstoque {
	var result []*model.MovimentacaoEstoque
	for _, m := range r.movimentos {
		if m.ProdutoID == produtoID {
			result = append(result, m)
		}
	}
	return result
}

var _ repository.MovimentacaoRepository = (*stubMovimentacaoRepo)(nil)

// ── VendaRepository ──────────────────────────────────────────────────────────

type stubVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
}

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{vendas: make(map[uuid.UUID]*model.Venda)}
}

func (r *stubVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Itens {
		v.Itens[i].VendaID = v.ID
	}
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVendaRepo) List(_ context.Context, _ dto.VendaFilter) ([]model.Venda, int64, error) {
	result := make([]model.Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		result = append(result, *v)
	}
	return result, int64(len(result)), nil
}

func (r *stubVendaRepo) SumTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.vendas {
		total = total.Add(v.ValorTotal)
	}
	return total, nil
}

func (r *stubVendaRepo) TotaisPorMes(_ context.Context, ano int) ([12]decimal.Decimal, error) {
	var totais [12]decimal.Decimal
	for _, v := range r.vendas {
		if v.DataCompra.Year() != ano {
			continue
		}
		mes := int(v.DataCompra.Month()) - 1
		totais[mes] = totais[mes].Add(v.ValorTotal)
	}
	return totais, nil
}

func (r *stubVendaRepo) ProdutosSemVendaDesde(_ context.Context, _ time.Time) ([]model.Produto, error) {
	return nil, nil
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) CreateTx(_ *gorm.DB, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByCPF(_ context.Context, cpf string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.CPF == cpf {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	result := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── PagamentoRepository ──────────────────────────────────────────────────────

type stubPagamentoRepo struct {
	pagamentos map[uuid.UUID]*model.Pagamento
}

func newStubPagamentoRepo() *stubPagamentoRepo {
	return &stubPagamentoRepo{pagamentos: make(map[uuid.UUID]*model.Pagamento)}
}

func (r *stubPagamentoRepo) Create(_ context.Context, p *model.Pagamento) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagamentos[p.ID] = p
	return nil
}

func (r *stubPagamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pagamento, error) {
	p, ok := r.pagamentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPagamentoRepo) List(_ context.Context) ([]model.Pagamento, error) {
	result := make([]model.Pagamento, 0, len(r.pagamentos))
	for _, p := range r.pagamentos {
		result = append(result, *p)
	}
	return result, nil
}

var _ repository.PagamentoRepository = (*stubPagamentoRepo)(nil)

// ── CategoriaRepository ──────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	result := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		result = append(result, *c)
	}
	return result, nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── FornecedorRepository ─────────────────────────────────────────────────────

type stubFornecedorRepo struct {
	fornecedores map[uuid.UUID]*model.Fornecedor
}

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{fornecedores: make(map[uuid.UUID]*model.Fornecedor)}
}

func (r *stubFornecedorRepo) CreateTx(_ *gorm.DB, f *model.Fornecedor) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFornecedorRepo) List(_ context.Context) ([]model.Fornecedor, error) {
	result := make([]model.Fornecedor, 0, len(r.fornecedores))
	for _, f := range r.fornecedores {
		result = append(result, *f)
	}
	return result, nil
}

func (r *stubFornecedorRepo) DB() *gorm.DB { return nil }

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

// ── PedidoRepository ─────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.PedidoFornecedor
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.PedidoFornecedor)}
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.PedidoFornecedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Itens {
		if p.Itens[i].ID == uuid.Nil {
			p.Itens[i].ID = uuid.New()
		}
		p.Itens[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PedidoFornecedor, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) FindByIDForUpdate(_ *gorm.DB, id uuid.UUID) (*model.PedidoFornecedor, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubPedidoRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	return nil
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.PedidoFornecedor, error) {
	result := make([]model.PedidoFornecedor, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── MensagemRepository ───────────────────────────────────────────────────────

type stubMensagemRepo struct {
	mensagens []*model.Mensagem
}

func newStubMensagemRepo() *stubMensagemRepo {
	return &stubMensagemRepo{}
}

func (r *stubMensagemRepo) Create(_ context.Context, m *model.Mensagem) error {
	return r.CreateTx(nil, m)
}

func (r *stubMensagemRepo) CreateTx(_ *gorm.DB, m *model.Mensagem) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mensagens = append(r.mensagens, m)
	return nil
}

func (r *stubMensagemRepo) List(_ context.Context) ([]model.Mensagem, error) {
	result := make([]model.Mensagem, 0, len(r.mensagens))
	for _, m := range r.mensagens {
		result = append(result, *m)
	}
	return result, nil
}

var _ repository.MensagemRepository = (*stubMensagemRepo)(nil)

// ── UsuarioRepository ────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existente := range r.usuarios {
		if existente.Login == u.Login {
			return errors.New("login já cadastrado")
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByLogin(_ context.Context, login string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

// seedProdutoComEstoque grava o produto e seu registro de estoque, ambos
// apontando para a mesma struct Estoque para refletir mutações ao vivo.
func seedProdutoComEstoque(produtos *stubProdutoRepo, estoques *stubEstoqueRepo, nome string, preco float64, quantidade, minimo int) *model.Produto {
	p := &model.Produto{
		ID:          uuid.New(),
		Nome:        nome,
		Preco:       decimal.NewFromFloat(preco),
		CategoriaID: uuid.New(),
	}
	est := &model.Estoque{
		ID:         uuid.New(),
		ProdutoID:  p.ID,
		Quantidade: quantidade,
		Minimo:     minimo,
	}
	p.Estoque = est
	produtos.produtos[p.ID] = p
	estoques.estoques[p.ID] = est
	return p
}

func seedCliente(repo *stubClienteRepo, nome, cpf string) *model.Cliente {
	c := &model.Cliente{
		ID:   uuid.New(),
		Nome: nome,
		CPF:  cpf,
	}
	repo.clientes[c.ID] = c
	return c
}

func seedPagamento(repo *stubPagamentoRepo, tipo string, parcela int) *model.Pagamento {
	p := &model.Pagamento{
		ID:      uuid.New(),
		Tipo:    tipo,
		Parcela: parcela,
	}
	repo.pagamentos[p.ID] = p
	return p
}

func seedFornecedor(repo *stubFornecedorRepo, nome, cnpj string) *model.Fornecedor {
	f := &model.Fornecedor{
		ID:   uuid.New(),
		Nome: nome,
		CNPJ: cnpj,
	}
	repo.fornecedores[f.ID] = f
	return f
}

func seedCategoria(repo *stubCategoriaRepo, nome string) *model.Categoria {
	c := &model.Categoria{
		ID:   uuid.New(),
		Nome: nome,
	}
	repo.categorias[c.ID] = c
	return c
}
