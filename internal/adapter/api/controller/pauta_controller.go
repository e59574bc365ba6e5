package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	pautadomain "github.com/precodigital/tabelas-precos-api/internal/domain/pauta"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// PautaController gerencia as requisições de itens de pauta
type PautaController struct {
	pautaRepo     pautadomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewPautaController cria uma nova instância de PautaController
func NewPautaController(pautaRepo pautadomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *PautaController {
	return &PautaController{
		pautaRepo:     pautaRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria um novo item de pauta. Os campos numéricos exigidos dependem
// do pauta_tipo e são validados antes de qualquer escrita.
func (c *PautaController) Criar(ctx *gin.Context) {
	var req dto.PautaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, destino_codigo, produto_id e pauta_tipo são obrigatórios"))
		return
	}

	item, err := pautadomain.Novo(req.EmpresaID, req.DestinoCodigo, req.Operacao, req.ProdutoID, pautadomain.Tipo(req.Tipo))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}
	req.Aplicar(item)

	if err := item.ValidarTipo(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.pautaRepo.Criar(ctx, item); err != nil {
		c.logger.Error("erro ao criar item de pauta", "produto_id", item.ProdutoID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(item.EmpresaID, "pauta_item", item.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPautaSalvaResponse(item))
}

// Atualizar atualiza um item de pauta existente
func (c *PautaController) Atualizar(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.PautaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, destino_codigo, produto_id e pauta_tipo são obrigatórios"))
		return
	}

	item, err := c.pautaRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPautaNaoEncontrada) {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("item de pauta não encontrado"))
			return
		}
		c.logger.Error("erro ao buscar item de pauta", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	atualizado, err := pautadomain.Novo(req.EmpresaID, req.DestinoCodigo, req.Operacao, req.ProdutoID, pautadomain.Tipo(req.Tipo))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	item.DestinoCodigo = atualizado.DestinoCodigo
	item.Operacao = atualizado.Operacao
	item.ProdutoID = atualizado.ProdutoID
	item.Tipo = atualizado.Tipo
	req.Aplicar(item)
	item.Tocar()

	if err := item.ValidarTipo(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.pautaRepo.Atualizar(ctx, item); err != nil {
		c.logger.Error("erro ao atualizar item de pauta", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(item.EmpresaID, "pauta_item", item.ID, auditoria.AcaoAtualizar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPautaSalvaResponse(item))
}

// Listar retorna os itens de pauta de uma empresa, com filtros opcionais
// de destino e operação
func (c *PautaController) Listar(ctx *gin.Context) {
	empresaID := ctx.Query("empresa_id")
	if empresaID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	filtro := pautadomain.Filtro{
		EmpresaID: empresaID,
		Destino:   ctx.Query("destino"),
		Operacao:  ctx.Query("operacao"),
	}

	itens, err := c.pautaRepo.Listar(ctx, filtro)
	if err != nil {
		c.logger.Error("erro ao listar itens de pauta", "empresa_id", empresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaPautaResponse(itens))
}
