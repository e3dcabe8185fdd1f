package handler

import (
	"errors"
	"net/http"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/middleware"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Description  Cria o produto com seu registro de estoque; quantidade inicial entra no livro como ENTRADA.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarProdutoRequest true "Dados do produto"
// @Success      201  {object} dto.ProdutoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/produtos [post]
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Criar(c.Request.Context(), usuarioID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obter godoc
// @Summary      Detalhar produto
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/{id} [get]
func (h *ProdutosHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        q            query string false "Busca por nome"
// @Param        categoria_id query string false "Filtro por categoria"
// @Param        page         query int    false "Página (default 1)"
// @Param        limit        query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.ProdutoListResponse
// @Router       /v1/produtos [get]
func (h *ProdutosHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID do produto"
// @Param        body body dto.AtualizarProdutoRequest true "Dados do produto"
// @Success      200  {object} dto.ProdutoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/produtos/{id} [put]
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DefinirPromocao godoc
// @Summary      Definir preço promocional
// @Description  Define o preço promocional do produto; corpo com valor nulo remove a promoção.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "UUID do produto"
// @Param        body body dto.PromocaoRequest true "Preço promocional"
// @Success      200  {object} dto.ProdutoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/produtos/{id}/promocao [put]
func (h *ProdutosHandler) DefinirPromocao(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.PromocaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DefinirPromocao(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProdutoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
