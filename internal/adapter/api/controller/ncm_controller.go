package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	ncmdomain "github.com/precodigital/tabelas-precos-api/internal/domain/ncm"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// NCMController gerencia as requisições relacionadas a categorias NCM
type NCMController struct {
	ncmRepo       ncmdomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewNCMController cria uma nova instância de NCMController
func NewNCMController(ncmRepo ncmdomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *NCMController {
	return &NCMController{
		ncmRepo:       ncmRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria uma nova categoria NCM
func (c *NCMController) Criar(ctx *gin.Context) {
	var req dto.CategoriaNCMRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, nome e ncm são obrigatórios"))
		return
	}

	categoria, err := ncmdomain.Nova(req.EmpresaID, req.Nome, req.NCM)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.ncmRepo.Criar(ctx, categoria); err != nil {
		c.logger.Error("erro ao criar categoria NCM", "nome", categoria.Nome, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(categoria.EmpresaID, "ncm_categoria", categoria.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoriaNCMSalvaResponse(categoria))
}

// Listar retorna as categorias NCM de uma empresa
func (c *NCMController) Listar(ctx *gin.Context) {
	empresaID := ctx.Query("empresa_id")
	if empresaID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	categorias, err := c.ncmRepo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		c.logger.Error("erro ao listar categorias NCM", "empresa_id", empresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaCategoriasNCMResponse(categorias))
}

// Semear grava o conjunto de categorias sugeridas da empresa, pulando as
// que já existem pelo nome. Aceita sementes customizadas no corpo.
func (c *NCMController) Semear(ctx *gin.Context) {
	var req dto.SementeNCMRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	sementes := req.Sementes
	if len(sementes) == 0 {
		sementes = ncmdomain.SementesPadrao
	}

	existentes, err := c.ncmRepo.NomesExistentes(ctx, req.EmpresaID)
	if err != nil {
		c.logger.Error("erro ao consultar categorias NCM", "empresa_id", req.EmpresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	novas := make([]*ncmdomain.Categoria, 0, len(sementes))
	for _, s := range sementes {
		if existentes[s.Nome] {
			continue
		}
		categoria, err := ncmdomain.Nova(req.EmpresaID, s.Nome, s.NCM)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
			return
		}
		novas = append(novas, categoria)
	}

	if err := c.ncmRepo.CriarLote(ctx, novas); err != nil {
		c.logger.Error("erro ao semear categorias NCM", "empresa_id", req.EmpresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(req.EmpresaID, "ncm_categoria", "", auditoria.AcaoSemear, map[string]any{
		"sementes":  len(sementes),
		"inseridas": len(novas),
	})
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.SementeNCMResponse{OK: true, Inseridas: len(novas)})
}
