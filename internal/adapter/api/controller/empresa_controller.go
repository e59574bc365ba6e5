package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	empresadomain "github.com/precodigital/tabelas-precos-api/internal/domain/empresa"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// EmpresaController gerencia as requisições relacionadas a empresas
type EmpresaController struct {
	empresaRepo   empresadomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewEmpresaController cria uma nova instância de EmpresaController
func NewEmpresaController(empresaRepo empresadomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *EmpresaController {
	return &EmpresaController{
		empresaRepo:   empresaRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria uma nova empresa
func (c *EmpresaController) Criar(ctx *gin.Context) {
	var req dto.EmpresaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("nome é obrigatório"))
		return
	}

	e, err := empresadomain.Nova(req.Nome)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}
	e.LogoURL = req.LogoURL
	e.TemaJSON = req.TemaJSON
	e.ConfigJSON = req.ConfigJSON

	if err := c.empresaRepo.Criar(ctx, e); err != nil {
		c.logger.Error("erro ao criar empresa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(e.ID, "empresa", e.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEmpresaSalvaResponse(e))
}

// Atualizar atualiza os dados de uma empresa
func (c *EmpresaController) Atualizar(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.EmpresaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("nome é obrigatório"))
		return
	}

	e, err := c.empresaRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmpresaNaoEncontrada) {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa não encontrada"))
			return
		}
		c.logger.Error("erro ao buscar empresa", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := e.Atualizar(req.Nome, req.LogoURL, req.TemaJSON, req.ConfigJSON); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.empresaRepo.Atualizar(ctx, e); err != nil {
		c.logger.Error("erro ao atualizar empresa", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(e.ID, "empresa", e.ID, auditoria.AcaoAtualizar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmpresaSalvaResponse(e))
}

// Listar retorna todas as empresas cadastradas
func (c *EmpresaController) Listar(ctx *gin.Context) {
	empresas, err := c.empresaRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("erro ao listar empresas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaEmpresasResponse(empresas))
}
