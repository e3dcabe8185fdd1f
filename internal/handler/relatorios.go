package handler

import (
	"net/http"
	"strconv"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/apierror"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Painel gerencial
// @Description  Total vendido, itens em estoque, produtos parados há 90 dias e contagem abaixo do mínimo.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardResponse
// @Router       /v1/relatorios/dashboard [get]
func (h *RelatoriosHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o painel"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasPorMes godoc
// @Summary      Totais de venda por mês
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        ano query int false "Ano (default: ano corrente)"
// @Success      200 {object} dto.VendasPorMesResponse
// @Router       /v1/relatorios/vendas-por-mes [get]
func (h *RelatoriosHandler) VendasPorMes(c *gin.Context) {
	ano, _ := strconv.Atoi(c.Query("ano"))
	resp, err := h.svc.VendasPorMes(c.Request.Context(), ano)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EstoqueAtual godoc
// @Summary      Fotografia do estoque atual
// @Description  Quantidade por produto; resposta cacheada por 60s.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.EstoqueAtualResponse
// @Router       /v1/relatorios/estoque-atual [get]
func (h *RelatoriosHandler) EstoqueAtual(c *gin.Context) {
	resp, err := h.svc.EstoqueAtual(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar estoque"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
