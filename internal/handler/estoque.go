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

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// Definir godoc
// @Summary      Definir quantidade em estoque
// @Description  Fixa a quantidade absoluta do produto. A diferença é gravada como movimentação AJUSTE MANUAL.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id path string                    true "UUID do produto"
// @Param        body       body dto.DefinirEstoqueRequest true "Quantidade alvo"
// @Success      200  {object} dto.EstoqueResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/estoque/{produto_id} [put]
func (h *EstoqueHandler) Definir(c *gin.Context) {
	produtoID, err := uuid.Parse(c.Param("produto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.DefinirEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.DefinirEstoque(c.Request.Context(), &usuarioID, produtoID, req)
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

// Consultar godoc
// @Summary      Consultar estoque de um produto
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id path string true "UUID do produto"
// @Success      200 {object} dto.EstoqueResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/estoque/{produto_id} [get]
func (h *EstoqueHandler) Consultar(c *gin.Context) {
	produtoID, err := uuid.Parse(c.Param("produto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ConsultarPorProduto(c.Request.Context(), produtoID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas godoc
// @Summary      Listar produtos com estoque baixo
// @Description  Produtos cuja quantidade está igual ou abaixo do mínimo configurado.
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AlertaEstoqueResponse
// @Router       /v1/estoque/alertas [get]
func (h *EstoqueHandler) Alertas(c *gin.Context) {
	resp, err := h.svc.ListarAlertas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar alertas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimentacoes godoc
// @Summary      Listar movimentações de estoque
// @Description  Livro de movimentações (ENTRADA, SAÍDA, AJUSTE MANUAL), mais recentes primeiro.
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id query string false "Filtro por produto"
// @Param        tipo       query string false "ENTRADA | SAÍDA | AJUSTE MANUAL"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.MovimentacaoListResponse
// @Router       /v1/estoque/movimentacoes [get]
func (h *EstoqueHandler) Movimentacoes(c *gin.Context) {
	var filter dto.MovimentacaoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarMovimentacoes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar movimentações"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
