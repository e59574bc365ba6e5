package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	stdomain "github.com/precodigital/tabelas-precos-api/internal/domain/st"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// STController gerencia as requisições de regras de substituição tributária
type STController struct {
	stRepo        stdomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewSTController cria uma nova instância de STController
func NewSTController(stRepo stdomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *STController {
	return &STController{
		stRepo:        stRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria uma nova regra de ST
func (c *STController) Criar(ctx *gin.Context) {
	var req dto.RegraSTRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id e destino_codigo são obrigatórios"))
		return
	}

	regra, err := stdomain.Nova(req.EmpresaID, req.DestinoCodigo, req.Operacao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}
	req.Aplicar(regra)

	if err := c.stRepo.Criar(ctx, regra); err != nil {
		c.logger.Error("erro ao criar regra de ST", "destino", regra.DestinoCodigo, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(regra.EmpresaID, "st_regra", regra.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRegraSTSalvaResponse(regra))
}

// Atualizar atualiza uma regra de ST existente
func (c *STController) Atualizar(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.RegraSTRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id e destino_codigo são obrigatórios"))
		return
	}

	regra, err := c.stRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegraSTNaoEncontrada) {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("regra de ST não encontrada"))
			return
		}
		c.logger.Error("erro ao buscar regra de ST", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	atualizada, err := stdomain.Nova(req.EmpresaID, req.DestinoCodigo, req.Operacao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	regra.DestinoCodigo = atualizada.DestinoCodigo
	regra.Operacao = atualizada.Operacao
	req.Aplicar(regra)
	regra.Tocar()

	if err := c.stRepo.Atualizar(ctx, regra); err != nil {
		c.logger.Error("erro ao atualizar regra de ST", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(regra.EmpresaID, "st_regra", regra.ID, auditoria.AcaoAtualizar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegraSTSalvaResponse(regra))
}

// Listar retorna as regras de ST de uma empresa, com filtros opcionais de
// destino e operação
func (c *STController) Listar(ctx *gin.Context) {
	empresaID := ctx.Query("empresa_id")
	if empresaID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	filtro := stdomain.Filtro{
		EmpresaID: empresaID,
		Destino:   ctx.Query("destino"),
		Operacao:  ctx.Query("operacao"),
	}

	regras, err := c.stRepo.Listar(ctx, filtro)
	if err != nil {
		c.logger.Error("erro ao listar regras de ST", "empresa_id", empresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaRegrasSTResponse(regras))
}
