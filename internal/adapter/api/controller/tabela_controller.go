package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	produtodomain "github.com/precodigital/tabelas-precos-api/internal/domain/produto"
	tabeladomain "github.com/precodigital/tabelas-precos-api/internal/domain/tabela"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// TabelaController gerencia as requisições de tabelas de preços
type TabelaController struct {
	tabelaRepo    tabeladomain.Repository
	produtoRepo   produtodomain.Repository
	auditoriaRepo auditoria.Repository
	logger        logger.Logger
}

// NewTabelaController cria uma nova instância de TabelaController
func NewTabelaController(tabelaRepo tabeladomain.Repository, produtoRepo produtodomain.Repository, auditoriaRepo auditoria.Repository, logger logger.Logger) *TabelaController {
	return &TabelaController{
		tabelaRepo:    tabelaRepo,
		produtoRepo:   produtoRepo,
		auditoriaRepo: auditoriaRepo,
		logger:        logger,
	}
}

// Criar cria uma nova tabela de preços
func (c *TabelaController) Criar(ctx *gin.Context) {
	var req dto.TabelaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id e nome são obrigatórios"))
		return
	}

	t, err := tabeladomain.Nova(req.EmpresaID, req.Nome)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(err.Error()))
		return
	}
	t.VigenciaInicio = req.VigenciaInicio
	t.VigenciaFim = req.VigenciaFim
	if req.Status != "" {
		t.Status = req.Status
	}

	if err := c.tabelaRepo.Criar(ctx, t); err != nil {
		c.logger.Error("erro ao criar tabela de preços", "nome", t.Nome, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(t.EmpresaID, "tabela_preco", t.ID, auditoria.AcaoCriar, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTabelaSalvaResponse(t))
}

// Listar retorna as tabelas de preços de uma empresa
func (c *TabelaController) Listar(ctx *gin.Context) {
	empresaID := ctx.Query("empresa_id")
	if empresaID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("empresa_id é obrigatório"))
		return
	}

	tabelas, err := c.tabelaRepo.ListarPorEmpresa(ctx, empresaID)
	if err != nil {
		c.logger.Error("erro ao listar tabelas de preços", "empresa_id", empresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaTabelasResponse(tabelas))
}

// ListarItens retorna os itens de uma tabela de preços
func (c *TabelaController) ListarItens(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.buscarTabela(ctx, id); err != nil {
		return
	}

	itens, err := c.tabelaRepo.ListarItens(ctx, id)
	if err != nil {
		c.logger.Error("erro ao listar itens da tabela", "tabela_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListaItensTabelaResponse(itens))
}

// SubstituirItens troca o conjunto completo de itens da tabela. Todos os
// itens são validados antes de qualquer escrita; a gravação acontece em
// uma única transação, sem estado parcial em caso de falha.
func (c *TabelaController) SubstituirItens(ctx *gin.Context) {
	id := ctx.Param("id")

	t, err := c.buscarTabela(ctx, id)
	if err != nil {
		return
	}

	var req dto.SubstituirItensRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("itens inválidos"))
		return
	}

	produtosDaEmpresa, err := c.produtoRepo.ListarPorEmpresa(ctx, t.EmpresaID)
	if err != nil {
		c.logger.Error("erro ao listar produtos da empresa", "empresa_id", t.EmpresaID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}
	idsValidos := make(map[string]bool, len(produtosDaEmpresa))
	for _, p := range produtosDaEmpresa {
		idsValidos[p.ID] = true
	}

	itens := make([]*tabeladomain.Item, 0, len(req.Itens))
	for i, linha := range req.Itens {
		item, err := tabeladomain.NovoItem(t.ID, linha.ProdutoID, linha.Preco)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(fmt.Sprintf("item %d: %s", i+1, err.Error())))
			return
		}
		if !idsValidos[item.ProdutoID] {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro(fmt.Sprintf("item %d: produto não pertence à empresa", i+1)))
			return
		}
		itens = append(itens, item)
	}

	if err := c.tabelaRepo.SubstituirItens(ctx, t.ID, itens); err != nil {
		c.logger.Error("erro ao substituir itens da tabela", "tabela_id", t.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	entrada := auditoria.NovaEntrada(t.EmpresaID, "tabela_preco", t.ID, auditoria.AcaoSubstituir, req)
	if !registrarAuditoria(ctx, c.logger, c.auditoriaRepo, entrada) {
		return
	}

	ctx.JSON(http.StatusOK, dto.SubstituicaoResponse{OK: true, Total: len(itens)})
}

// buscarTabela resolve a tabela dona da rota; tabela inexistente é falha
// de validação (400), mantendo a taxonomia de erros do restante da API.
func (c *TabelaController) buscarTabela(ctx *gin.Context, id string) (*tabeladomain.Tabela, error) {
	t, err := c.tabelaRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTabelaNaoEncontrada) {
			ctx.JSON(http.StatusBadRequest, dto.NovaRespostaErro("tabela não encontrada"))
			return nil, err
		}
		c.logger.Error("erro ao buscar tabela de preços", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return nil, err
	}
	return t, nil
}
