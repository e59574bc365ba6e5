package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	custodomain "github.com/precodigital/tabelas-precos-api/internal/domain/custo"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// CustoController gerencia as requisições de custos logísticos
type CustoController struct {
	custoRepo     custodomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewCustoController cria uma nova instância de CustoController
func NewCustoController(custoRepo custodomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *CustoController {
	return &CustoController{
		custoRepo:     custoRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria um novo custo logístico
func (c *CustoController) Criar(ctx *gin.Context) {
	var req dto.CustoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, destino_codigo, tipo_custo, unidade_cobranca e valor são obrigatórios"))
		return
	}

	custoNovo, err := custodomain.Novo(req.EmpresaID, req.DestinoCodigo, req.Operacao, req.TipoCusto, req.UnidadeCobranca, *req.Valor)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}
	req.Aplicar(custoNovo)

	if err := c.custoRepo.Criar(ctx, custoNovo); err != nil {
		c.logger.Error("erro ao criar custo logístico", "destino", custoNovo.DestinoCodigo, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(custoNovo.EmpresaID, "custo_logistico", custoNovo.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustoSalvoResponse(custoNovo))
}

// Atualizar atualiza um custo logístico existente
func (c *CustoController) Atualizar(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CustoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, destino_codigo, tipo_custo, unidade_cobranca e valor são obrigatórios"))
		return
	}

	existente, err := c.custoRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustoNaoEncontrado) {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("custo logístico não encontrado"))
			return
		}
		c.logger.Error("erro ao buscar custo logístico", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	atualizado, err := custodomain.Novo(req.EmpresaID, req.DestinoCodigo, req.Operacao, req.TipoCusto, req.UnidadeCobranca, *req.Valor)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	existente.DestinoCodigo = atualizado.DestinoCodigo
	existente.Operacao = atualizado.Operacao
	existente.TipoCusto = atualizado.TipoCusto
	existente.Valor = atualizado.Valor
	existente.UnidadeCobranca = atualizado.UnidadeCobranca
	req.Aplicar(existente)
	existente.Tocar()

	if err := c.custoRepo.Atualizar(ctx, existente); err != nil {
		c.logger.Error("erro ao atualizar custo logístico", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(existente.EmpresaID, "custo_logistico", existente.ID, auditoria.AcaoAtualizar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustoSalvoResponse(existente))
}

// Listar retorna os custos logísticos de uma empresa, com filtros
// opcionais de destino e operação
func (c *CustoController) Listar(ctx *gin.Context) {
	empresaID := ctx.Query("empresa_id")
	if empresaID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	filtro := custodomain.Filtro{
		EmpresaID: empresaID,
		Destino:   ctx.Query("destino"),
		Operacao:  ctx.Query("operacao"),
	}

	custos, err := c.custoRepo.Listar(ctx, filtro)
	if err != nil {
		c.logger.Error("erro ao listar custos logísticos", "empresa_id", empresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaCustosResponse(custos))
}
