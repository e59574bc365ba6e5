package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	produtodomain "github.com/precodigital/tabelas-precos-api/internal/domain/produto"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// ProdutoController gerencia as requisições relacionadas a produtos
type ProdutoController struct {
	produtoRepo   produtodomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewProdutoController cria uma nova instância de ProdutoController
func NewProdutoController(produtoRepo produtodomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *ProdutoController {
	return &ProdutoController{
		produtoRepo:   produtoRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria um novo produto
func (c *ProdutoController) Criar(ctx *gin.Context) {
	var req dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, sku e descricao são obrigatórios"))
		return
	}

	p, err := produtodomain.Novo(req.EmpresaID, req.SKU, req.Descricao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}
	req.Aplicar(p)
	p.Normalizar()

	if err := p.Validar(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.produtoRepo.Criar(ctx, p); err != nil {
		c.logger.Error("erro ao criar produto", "sku", p.SKU, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(p.EmpresaID, "produto", p.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProdutoSalvoResponse(p))
}

// Atualizar atualiza um produto existente
func (c *ProdutoController) Atualizar(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id, sku e descricao são obrigatórios"))
		return
	}

	p, err := c.produtoRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProdutoNaoEncontrado) {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("produto não encontrado"))
			return
		}
		c.logger.Error("erro ao buscar produto", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	req.Aplicar(p)
	p.Normalizar()
	p.Tocar()

	if err := p.Validar(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	if err := c.produtoRepo.Atualizar(ctx, p); err != nil {
		c.logger.Error("erro ao atualizar produto", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(p.EmpresaID, "produto", p.ID, auditoria.AcaoAtualizar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoSalvoResponse(p))
}

// Listar retorna os produtos de uma empresa
func (c *ProdutoController) Listar(ctx *gin.Context) {
	empresaID := ctx.Query("empresa_id")
	if empresaID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	produtos, err := c.produtoRepo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "empresa_id", empresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaProdutosResponse(produtos))
}

// Importar processa um lote de linhas coladas pelo cliente, inserindo os
// SKUs novos e atualizando os já cadastrados. Linhas inválidas são
// relatadas uma a uma sem abortar o lote.
func (c *ProdutoController) Importar(ctx *gin.Context) {
	var req dto.ImportacaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id e rows são obrigatórios"))
		return
	}

	template := produtodomain.Template(req.Template)
	if req.Template == "" {
		template = produtodomain.TemplatePadrao
	}

	linhas, err := produtodomain.MapearLinhas(template, req.EmpresaID, req.Rows)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}

	indexSKU, err := c.produtoRepo.IndicePorSKU(ctx, req.EmpresaID)
	if err != nil {
		c.logger.Error("erro ao indexar produtos", "empresa_id", req.EmpresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	inserir, atualizar, resultado := produtodomain.Reconciliar(linhas, indexSKU)

	if err := c.produtoRepo.ImportarLote(ctx, inserir, atualizar); err != nil {
		c.logger.Error("erro ao gravar lote de produtos", "empresa_id", req.EmpresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(req.EmpresaID, "produto", "", auditoria.AcaoImportarLote, map[string]any{
		"template":    string(template),
		"linhas":      len(req.Rows),
		"inseridos":   resultado.Inseridos,
		"atualizados": resultado.Atualizados,
		"erros":       len(resultado.Erros),
	})
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	c.logger.Info("importação de produtos concluída",
		"empresa_id", req.EmpresaID,
		"inseridos", resultado.Inseridos,
		"atualizados", resultado.Atualizados,
		"erros", len(resultado.Erros))

	ctx.JSON(http.StatusOK, dto.ToImportacaoResponse(resultado))
}
