package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	destinodomain "github.com/precodigital/tabelas-precos-api/internal/domain/destino"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// DestinoController gerencia as requisições relacionadas a destinos
type DestinoController struct {
	destinoRepo   destinodomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewDestinoController cria uma nova instância de DestinoController
func NewDestinoController(destinoRepo destinodomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *DestinoController {
	return &DestinoController{
		destinoRepo:   destinoRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Upsert grava um destino pelo código: cria se não existe, sobrescreve
// tipo e descrição se já existe. Destinos são globais, sem empresa.
func (c *DestinoController) Upsert(ctx *gin.Context) {
	var req dto.DestinoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("codigo e descricao são obrigatórios"))
		return
	}

	d, err := destinodomain.Novo(req.Codigo, req.Tipo, req.Descricao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.destinoRepo.Upsert(ctx, d); err != nil {
		c.logger.Error("erro ao gravar destino", "codigo", d.Codigo, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada("", "destino", d.Codigo, auditoria.AcaoUpsert, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDestinoSalvoResponse(d))
}

// Listar retorna todos os destinos cadastrados
func (c *DestinoController) Listar(ctx *gin.Context) {
	destinos, err := c.destinoRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("erro ao listar destinos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaDestinosResponse(destinos))
}
