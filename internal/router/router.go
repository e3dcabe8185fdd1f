package router

import (
	"time"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/config"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/handler"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/middleware"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/repository"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	estoqueRepo := repository.NewEstoqueRepository(db)
	movRepo := repository.NewMovimentacaoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	mensagemRepo := repository.NewMensagemRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	pagamentoRepo := repository.NewPagamentoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	estoqueSvc := service.NewEstoqueService(estoqueRepo, produtoRepo, movRepo, dispatcher)
	produtoSvc := service.NewProdutoService(produtoRepo, estoqueRepo, movRepo, categoriaRepo, fornecedorRepo)
	vendaSvc := service.NewVendaService(vendaRepo, clienteRepo, pagamentoRepo, produtoRepo, estoqueSvc)
	pedidoSvc := service.NewPedidoService(pedidoRepo, fornecedorRepo, produtoRepo, mensagemRepo, estoqueSvc)
	clienteSvc := service.NewClienteService(clienteRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, pagamentoRepo)
	relatorioSvc := service.NewRelatorioService(vendaRepo, estoqueRepo, produtoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/register", authH.Registrar)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	ambos := middleware.RequireCargo(model.CargoVendedor, model.CargoGerente)
	gerente := middleware.RequireCargo(model.CargoGerente)

	v1 := r.Group("/v1", jwtMW)
	{
		// Vendas — ambos os cargos
		v1.POST("/vendas", ambos, vendasH.Registrar)
		v1.GET("/vendas", ambos, vendasH.Listar)
		v1.GET("/vendas/:id", ambos, vendasH.Obter)

		// Produtos — leitura para ambos, escrita restrita ao gerente
		v1.GET("/produtos", ambos, produtosH.Listar)
		v1.GET("/produtos/:id", ambos, produtosH.Obter)
		prods := v1.Group("/produtos", gerente)
		{
			prods.POST("", produtosH.Criar)
			prods.PUT("/:id", produtosH.Atualizar)
			prods.PUT("/:id/promocao", produtosH.DefinirPromocao)
		}

		// Estoque — consulta e ajuste manual para ambos os cargos
		est := v1.Group("/estoque", ambos)
		{
			est.GET("/alertas", estoqueH.Alertas)
			est.GET("/movimentacoes", estoqueH.Movimentacoes)
			est.GET("/:produto_id", estoqueH.Consultar)
			est.PUT("/:produto_id", estoqueH.Definir)
		}

		// Pedidos a fornecedor — ambos criam e recebem
		ped := v1.Group("/pedidos", ambos)
		{
			ped.POST("", pedidosH.Criar)
			ped.GET("", pedidosH.Listar)
			ped.GET("/:id", pedidosH.Obter)
			ped.POST("/:id/receber", pedidosH.Receber)
		}

		// Mensagens do sistema — somente gerente
		v1.GET("/mensagens", gerente, pedidosH.Mensagens)

		// Clientes — criados no balcão durante a venda
		cli := v1.Group("/clientes", ambos)
		{
			cli.POST("", clientesH.Criar)
			cli.GET("", clientesH.Listar)
			cli.GET("/busca", clientesH.BuscarPorCPF)
			cli.GET("/:id", clientesH.Obter)
		}

		// Fornecedores — somente gerente
		forn := v1.Group("/fornecedores", gerente)
		{
			forn.POST("", fornecedoresH.Criar)
			forn.GET("", fornecedoresH.Listar)
			forn.GET("/:id", fornecedoresH.Obter)
		}

		// Categorias e pagamentos — gerente escreve, ambos leem
		v1.GET("/categorias", ambos, categoriasH.Listar)
		v1.POST("/categorias", gerente, categoriasH.Criar)
		v1.GET("/pagamentos", ambos, categoriasH.ListarPagamentos)
		v1.POST("/pagamentos", gerente, categoriasH.CriarPagamento)

		// Relatórios — somente gerente
		rel := v1.Group("/relatorios", gerente)
		{
			rel.GET("/dashboard", relatoriosH.Dashboard)
			rel.GET("/vendas-por-mes", relatoriosH.VendasPorMes)
			rel.GET("/estoque-atual", relatoriosH.EstoqueAtual)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
